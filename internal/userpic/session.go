package userpic

import (
	"context"
	"image"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Session merges the userpic sources of one signed-in user.
type Session struct {
	userpics chan image.Image
	cancel   context.CancelFunc
	done     chan struct{}
}

// Stream starts every source. A failing source is logged and does not stop
// the others; the channel closes once all of them returned.
func Stream(ctx context.Context, log *slog.Logger, sources ...Source) *Session {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		userpics: make(chan image.Image, 1),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, source := range sources {
		g.Go(func() error {
			err := source.Run(ctx, s.userpics)
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Warn("userpic source stopped", slog.String("source", source.Name()), slog.Any("error", err))
			}
			return nil
		})
	}
	go func() {
		_ = g.Wait()
		close(s.userpics)
		close(s.done)
	}()
	return s
}

func (s *Session) Userpics() <-chan image.Image { return s.userpics }

// Close stops the sources and waits for them. Pending images are dropped.
func (s *Session) Close() {
	s.cancel()
	for {
		select {
		case <-s.done:
			return
		case _, ok := <-s.userpics:
			if !ok {
				<-s.done
				return
			}
		}
	}
}
