package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hblok/starfighter/internal/config"
	"github.com/hblok/starfighter/internal/core"
	"github.com/hblok/starfighter/internal/game"
	"github.com/hblok/starfighter/internal/platform/tui"
	"github.com/hblok/starfighter/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play starfighter",
	Long: `Start a game session.

Controls:
  Left/Right, A/D  - Rotate
  Up, W            - Thrust
  Space            - Fire (also starts a run)
  Enter            - Confirm / restart
  P                - Pause
  Esc/B            - Back to menu (from game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower spawns, later tiers
  normal - Default tuning
  hard   - Fewer lives, faster spawns, earlier tiers
  fixed  - No tier progression, stays at tier 1

Examples:
  starfighter play
  starfighter play --difficulty hard
  starfighter play --config ./my-tuning.yaml
  starfighter play --seed 12345`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load tuning and apply difficulty
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	difficulty := "normal"
	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyPreset(&gameCfg, preset)
		difficulty = string(preset)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	g := game.NewWithConfig(gameCfg)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		g.SetStore(storage.NewRunRecorder(store, difficulty))
	}

	runErr := tui.Run(g, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
