package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gradius/internal/game"
	"github.com/vovakirdan/tui-gradius/internal/logging"
	"github.com/vovakirdan/tui-gradius/internal/platform/tui"
)

var errConsoleUnavailable = errors.New("console unavailable: stdin and stdout must be a terminal")

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the game at the main menu.

Controls (defaults, see 'gradius keys'):
  1          - Start mission
  2          - Exit
  Up/W       - Move up
  Down/S     - Move down
  Space      - Fire
  Ctrl+C     - Quit at any time

Examples:
  gradius play
  gradius play --seed 7
  gradius play --config ~/.gradius/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errConsoleUnavailable
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{Path: flagLogFile, Level: flagLogLevel})
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting", "config", source, "seed", flagSeed)

	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		if w < game.Width || h < game.ScreenHeight {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the playfield needs %dx%d\n",
				w, h, game.Width, game.ScreenHeight)
		}
	}

	runErr := tui.Run(tui.Options{
		Seed:   flagSeed,
		Config: cfg,
		Logger: logger,
	})
	if runErr != nil {
		logger.Error("game exited with error", "err", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}

	logger.Info("exited")
	return nil
}
