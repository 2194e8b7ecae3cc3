package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"scalepreview/internal/app"
	"scalepreview/internal/style"
	"scalepreview/internal/userpic"
)

type Config struct {
	Debug            bool
	StylePath        string
	Userpic          string
	ClipboardUserpic bool
	NoSession        bool
	Ratio            int
	Translucent      bool
	Scale            int
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "scalepreview [flags]",
		Short: "Interface scale slider with a live chat preview",
		Long: `scalepreview opens a settings page with an interface scale slider.
While the slider is dragged a mock chat message is drawn above it at the
scale under the cursor.`,
		Example: `  # Day theme with a userpic that follows the file on disk
  scalepreview --userpic ~/me.png

  # Separate preview window, as on desktops with compositing
  scalepreview --translucent

  # Style overrides and debug logging
  scalepreview --style night.toml -d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&cfg.StylePath, "style", "", "TOML file with style overrides")
	rootCmd.Flags().StringVar(&cfg.Userpic, "userpic", "", "Image file to use as userpic; reloaded when it changes")
	rootCmd.Flags().BoolVar(&cfg.ClipboardUserpic, "clipboard-userpic", false, "Use images copied to the clipboard as userpic")
	rootCmd.Flags().BoolVar(&cfg.NoSession, "no-session", false, "Run without a user session; the preview stays off")
	rootCmd.Flags().IntVar(&cfg.Ratio, "ratio", 1, "Device pixel ratio")
	rootCmd.Flags().BoolVar(&cfg.Translucent, "translucent", false, "Present the preview as a separate translucent window")
	rootCmd.Flags().IntVar(&cfg.Scale, "scale", style.ScaleDefault, "Initial interface scale in percent")

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithVersion("v0.1.0"),
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	st := style.Default()
	if cfg.StylePath != "" {
		loaded, err := style.Load(cfg.StylePath)
		if err != nil {
			return err
		}
		st = loaded
	}
	if cfg.Scale < style.ScaleMin || cfg.Scale > style.ScaleMax {
		return fmt.Errorf("scale %d out of range %d..%d", cfg.Scale, style.ScaleMin, style.ScaleMax)
	}

	opts := app.Options{
		Style:       st,
		Logger:      logger,
		Ratio:       cfg.Ratio,
		Translucent: cfg.Translucent,
		Scale:       cfg.Scale,
	}
	if !cfg.NoSession {
		picks := make(chan image.Image, 1)
		sources := []userpic.Source{userpic.Channel{C: picks}}
		if cfg.Userpic != "" {
			sources = append(sources, userpic.File{Path: cfg.Userpic, Log: logger})
		}
		if cfg.ClipboardUserpic {
			sources = append(sources, app.ClipboardSource{Log: logger})
		}
		session := userpic.Stream(ctx, logger, sources...)
		defer session.Close()
		opts.Session = session
		opts.Picks = picks
	}

	return app.New(opts).Run()
}
