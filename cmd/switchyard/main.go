// switchyard is a train switching arcade game for the terminal.
//
// Usage:
//
//	switchyard                 - Play (same as "switchyard play")
//	switchyard play            - Play the game
//	switchyard scores          - Show recorded runs and the high score
//	switchyard reset-high      - Reset the stored high score
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.switchyard/switchyard.db)
//	--log-level <level> - debug, info, warn or error (default: warn)
//	--log-file <path>   - Log destination, "-" for stderr (default: ~/.switchyard/switchyard.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/switchyard/internal/games/switchyard"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "switchyard",
	Short: "Switchyard - route trains and keep them apart",
	Long: `Switchyard is a terminal arcade game. Trains roll in on the top track;
flip the three switches to send them across four tracks, let them dwell at
the station, and keep them from running into each other. Every train that
leaves the screen scores points for each of its cars.

Available commands:
  play       - Play the game (default)
  scores     - View recorded runs and the high score
  reset-high - Reset the stored high score

Examples:
  switchyard
  switchyard play --difficulty hard
  switchyard scores --interactive
  switchyard reset-high --all`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.switchyard/switchyard.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, `Log file path ("-" for stderr)`)

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetHighCmd)
}
