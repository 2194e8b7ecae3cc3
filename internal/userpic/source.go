// Package userpic produces the avatar shown next to the preview bubble.
// Sources run on their own goroutines and publish decoded images on a
// channel that the preview drains from the UI goroutine.
package userpic

import (
	"context"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Source publishes userpics until ctx is done. A nil image means the
// userpic went away.
type Source interface {
	Name() string
	Run(ctx context.Context, out chan<- image.Image) error
}

func send(ctx context.Context, out chan<- image.Image, img image.Image) error {
	select {
	case out <- img:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Static publishes one image.
type Static struct {
	Image image.Image
}

func (Static) Name() string { return "static" }

func (s Static) Run(ctx context.Context, out chan<- image.Image) error {
	return send(ctx, out, s.Image)
}

// File publishes the image at Path and again whenever it is rewritten.
type File struct {
	Path string
	Log  *slog.Logger
}

func (f File) Name() string { return "file" }

func (f File) Run(ctx context.Context, out chan<- image.Image) error {
	log := f.Log
	if log == nil {
		log = slog.Default()
	}
	path, err := filepath.Abs(f.Path)
	if err != nil {
		return errors.Wrap(err, "resolve userpic path")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()
	// The directory is watched so that editors replacing the file by
	// rename keep being noticed.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(path))
	}

	if img, err := DecodeFile(path); err != nil {
		log.Warn("userpic unreadable", slog.String("path", path), slog.Any("error", err))
	} else if err := send(ctx, out, img); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("userpic watcher", slog.Any("error", err))
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			switch {
			case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
				img, err := DecodeFile(path)
				if err != nil {
					// Partial writes fail here; the final write event follows.
					log.Debug("userpic not ready", slog.Any("error", err))
					continue
				}
				log.Debug("userpic changed", slog.String("path", path))
				if err := send(ctx, out, img); err != nil {
					return err
				}
			case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
				log.Debug("userpic removed", slog.String("path", path))
				if err := send(ctx, out, nil); err != nil {
					return err
				}
			}
		}
	}
}

// Channel forwards images from C, such as ones picked by the user.
type Channel struct {
	C <-chan image.Image
}

func (Channel) Name() string { return "channel" }

func (c Channel) Run(ctx context.Context, out chan<- image.Image) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case img, ok := <-c.C:
			if !ok {
				return nil
			}
			if err := send(ctx, out, img); err != nil {
				return err
			}
		}
	}
}
