package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/aaronzipp/hand-cricket/internal/config"
	"github.com/aaronzipp/hand-cricket/internal/console"
	"github.com/aaronzipp/hand-cricket/internal/game"
	"github.com/aaronzipp/hand-cricket/internal/models"
	"github.com/aaronzipp/hand-cricket/internal/render"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hand-cricket: ")

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hand-cricket",
		Usage: "score runs until the computer matches your number",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file (default " + config.DefaultFile + " if present)",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "fix the computer's draws (0 picks a random seed)",
			},
			&cli.StringFlag{
				Name:  "on-invalid",
				Usage: "what to do with input that is not a number: abort or reprompt",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "print a round-by-round summary after the final score",
			},
			&cli.BoolFlag{
				Name:  "share-qr",
				Usage: "print a QR code of the result after the final score",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (logs go to stderr)",
			},
		},
		Action: play,
	}
}

// applyFlags overrides config values with flags given on the command line
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("seed") {
		cfg.Seed = c.Uint64("seed")
	}
	if c.IsSet("on-invalid") {
		cfg.OnInvalid = c.String("on-invalid")
	}
	if c.IsSet("summary") {
		cfg.ShowSummary = c.Bool("summary")
	}
	if c.IsSet("share-qr") {
		cfg.ShareQR = c.Bool("share-qr")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
}

func play(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(c, cfg)
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
	out := c.App.Writer

	seed := cfg.Seed
	if seed == 0 {
		seed = game.NewSeed()
	}
	g := models.NewGame()
	logger.Debug("session started", "game_id", g.ID, "seed", seed, "on_invalid", policy)

	fmt.Fprintln(out, render.Welcome())
	loop := &game.Loop{
		Runs:   console.NewPrompter(c.App.Reader, out, policy),
		Roller: game.NewRoller(seed),
		Reporter: &render.Console{
			Out:         out,
			ShowSummary: cfg.ShowSummary,
			ShareQR:     cfg.ShareQR,
			Logger:      logger,
		},
		Logger: logger,
	}
	return loop.Play(g)
}
