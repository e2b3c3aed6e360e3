package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakematrix/internal/audio"
	"github.com/vovakirdan/snakematrix/internal/config"
	"github.com/vovakirdan/snakematrix/internal/core"
	"github.com/vovakirdan/snakematrix/internal/matrix"
	"github.com/vovakirdan/snakematrix/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the snake matrix",
	Long: `Start the snake matrix in the terminal.

Controls:
  Arrows       - Steer the snake
  Click        - Cycle food on a cell (sin, triangle, square, empty)
  h/j/k/l      - Move the tap cursor
  Space/Enter  - Cycle food under the cursor
  P            - Pause
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  snakematrix play
  snakematrix play --width 12 --height 7
  snakematrix play --scale chromatic --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := openLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, logCloser, _ = openLogger("", false)
	}
	defer logCloser.Close()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	m, err := matrix.New(cfg.Grid.Width, cfg.Grid.Height, matrix.WithSeed(rc.Seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	m.Seed()
	engine := matrix.NewLocked(m)

	logger.Info("session started",
		"config", source,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"seed", rc.Seed,
		"head", m.HeadPosition(),
		"direction", m.Direction(),
	)

	mixer, stopAudio := startAudio(cfg.Audio, cfg.Grid.Height, logger)
	defer stopAudio()

	runErr := tui.Run(engine, rc, tui.Options{
		BeatInterval:  cfg.Timing.BeatInterval(),
		SnakeInterval: cfg.Timing.SnakeInterval(),
		FrameRate:     cfg.Timing.FrameRate,
		Mixer:         mixer,
		Logger:        logger,
	})

	snap := engine.Snapshot()
	logger.Info("session ended", "length", snap.BodyLen(), "food", snap.FoodState())

	if runErr != nil {
		logger.Error("tui failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running snakematrix: %v\n", runErr)
		stopAudio()
		logCloser.Close()
		os.Exit(1)
	}
}

// startAudio builds the row mixer and opens the speaker. Audio problems are
// logged and the session continues silently.
func startAudio(cfg config.AudioConfig, rows int, logger *log.Logger) (*audio.Mixer, func()) {
	noop := func() {}
	if !cfg.Enabled {
		logger.Info("audio disabled")
		return nil, noop
	}

	freqs, err := audio.RowFrequencies(cfg.Scale, cfg.BaseFrequency, rows)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil, noop
	}

	rate := beep.SampleRate(cfg.SampleRate)
	mixer := audio.NewMixer(rate, freqs, cfg.Release())
	sp := audio.NewSpeaker(rate, cfg.Buffer())
	if err := sp.Start(mixer.Output(cfg.Volume)); err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil, noop
	}

	logger.Debug("audio started", "scale", cfg.Scale, "rate", cfg.SampleRate, "voices", len(freqs))
	return mixer, sp.Close
}
