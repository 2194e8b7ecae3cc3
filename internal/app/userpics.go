package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/sqweek/dialog"
	"golang.design/x/clipboard"

	"scalepreview/internal/userpic"
)

// ClipboardSource publishes every image copied to the system clipboard.
type ClipboardSource struct {
	Log *slog.Logger
}

func (ClipboardSource) Name() string { return "clipboard" }

func (c ClipboardSource) Run(ctx context.Context, out chan<- image.Image) error {
	log := c.Log
	if log == nil {
		log = slog.Default()
	}
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("init clipboard: %w", err)
	}
	if data := clipboard.Read(clipboard.FmtImage); len(data) > 0 {
		if img, err := userpic.DecodeBytes(data); err == nil {
			select {
			case out <- img:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	for data := range clipboard.Watch(ctx, clipboard.FmtImage) {
		img, err := userpic.DecodeBytes(data)
		if err != nil {
			log.Warn("clipboard image unreadable", slog.Any("error", err))
			continue
		}
		select {
		case out <- img:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return ctx.Err()
}

var _ userpic.Source = ClipboardSource{}

func (a *App) pickUserpic() error {
	if a.opts.Picks == nil {
		return errors.New("no session")
	}
	path, err := dialog.File().
		Title("Choose userpic").
		Filter("Images", "png", "jpg", "jpeg", "gif", "bmp", "webp").
		Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return nil
		}
		return err
	}
	path = filepath.Clean(path)
	img, err := userpic.DecodeFile(path)
	if err != nil {
		return err
	}
	select {
	case a.opts.Picks <- img:
		a.status = "Userpic: " + filepath.Base(path)
	default:
		return errors.New("previous userpic still pending")
	}
	return nil
}
