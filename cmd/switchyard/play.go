package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/switchyard/internal/audio"
	"github.com/vovakirdan/switchyard/internal/config"
	"github.com/vovakirdan/switchyard/internal/core"
	"github.com/vovakirdan/switchyard/internal/games/switchyard"
	"github.com/vovakirdan/switchyard/internal/platform/tui"
	"github.com/vovakirdan/switchyard/internal/registry"
	"github.com/vovakirdan/switchyard/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Switchyard",
	Long: `Start a game of Switchyard.

Controls:
  Mouse click - Toggle the switch under the pointer
  1 / 2 / 3   - Toggle switch 1, 2 or 3
  R           - Restart
  P/Esc       - Pause
  D           - Show per-train debug lines
  M           - Mute/unmute
  Ctrl+S      - Save a screenshot to ~/.switchyard/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower trains, longer spawn interval
  normal - Configured starting values
  hard   - Faster trains, shorter spawn interval
  fixed  - No progression, speed and interval never change

Examples:
  switchyard play
  switchyard play --difficulty easy
  switchyard play --seed 42 --fps 30
  switchyard play --config ./my-yard.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, logCloser, err := newLogger(flagLogLevel, flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// A bad --config is fatal; anything else falls back to defaults
	cfg, err := config.LoadSwitchyard(flagConfig)
	if err != nil {
		if flagConfig != "" {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Warn("using built-in config", "error", err)
		cfg = config.DefaultSwitchyardConfig()
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set config path and difficulty before the game is created
	switchyard.SetConfigPath(flagConfig)
	switchyard.SetDifficultyPreset(preset)

	game, err := registry.Create(switchyard.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, continuing without persistence", "error", err)
		store = nil
	}

	highScore := 0
	if store != nil {
		if highScore, err = store.LoadHighScore(); err != nil {
			logger.Warn("could not read high score", "error", err)
		}
	}

	player := audio.Open(cfg.Audio, logger)
	player.SetMuted(flagMute)

	// Leave the last row for the help bar
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}

	runErr := tui.Run(game, tui.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   max(1, height-1),
			TickRate:  fps,
			Seed:      flagSeed,
			HighScore: highScore,
		},
	})

	// Release resources before potential exit
	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
