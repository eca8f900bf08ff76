package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/switchyard/internal/games/switchyard"
	"github.com/vovakirdan/switchyard/internal/storage"
)

var flagResetAll bool

var resetHighCmd = &cobra.Command{
	Use:   "reset-high",
	Short: "Reset the stored high score",
	Long: `Set the stored high score back to zero. With --all, the recorded
run history is deleted as well.`,
	Args: cobra.NoArgs,
	Run:  runResetHigh,
}

func init() {
	resetHighCmd.Flags().BoolVar(&flagResetAll, "all", false, "Also delete the run history")
}

func runResetHigh(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ResetHighScore(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagResetAll {
		if err := store.ClearScores(switchyard.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High score and run history cleared.")
		return
	}
	fmt.Println("High score reset.")
}
