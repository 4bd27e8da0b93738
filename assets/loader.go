package assets

import (
	"context"
	"errors"
	"image"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotReady is returned for an image that is still decoding.
var ErrNotReady = errors.New("assets: not ready")

const decodeWorkers = 4

type decoded struct {
	path string
	img  image.Image
	err  error
}

// Loader decodes images in the background. Decoded images are handed to
// convert on the goroutine that calls Poll, so T can be a GPU-backed type.
type Loader[T any] struct {
	src     Source
	convert func(image.Image) T
	log     *zap.Logger

	mu      sync.Mutex
	pending []decoded
	group   errgroup.Group
	sem     chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc

	ready   map[string]T
	sizes   map[string]image.Point
	failed  map[string]error
	started map[string]bool
}

func NewLoader[T any](src Source, convert func(image.Image) T, log *zap.Logger) *Loader[T] {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Loader[T]{
		src:     src,
		convert: convert,
		log:     log,
		sem:     make(chan struct{}, decodeWorkers),
		ctx:     ctx,
		cancel:  cancel,
		ready:   map[string]T{},
		sizes:   map[string]image.Point{},
		failed:  map[string]error{},
		started: map[string]bool{},
	}
}

// Request starts decoding every path not already requested. Empty paths
// are skipped.
func (l *Loader[T]) Request(paths ...string) {
	for _, p := range paths {
		if cleanAssetPath(p) == "" || l.started[p] {
			continue
		}
		l.started[p] = true
		path := p
		l.group.Go(func() error {
			select {
			case l.sem <- struct{}{}:
				defer func() { <-l.sem }()
			case <-l.ctx.Done():
				return nil
			}
			img, err := l.src.LoadImage(path)
			l.mu.Lock()
			l.pending = append(l.pending, decoded{path: path, img: img, err: err})
			l.mu.Unlock()
			return nil
		})
	}
}

// Poll moves finished decodes into the ready set and returns how many
// became ready.
func (l *Loader[T]) Poll() int {
	l.mu.Lock()
	batch := l.pending
	l.pending = nil
	l.mu.Unlock()

	n := 0
	for _, d := range batch {
		if d.err != nil {
			l.failed[d.path] = d.err
			l.log.Warn("asset load failed", zap.String("path", d.path), zap.Error(d.err))
			continue
		}
		l.ready[d.path] = l.convert(d.img)
		l.sizes[d.path] = d.img.Bounds().Size()
		n++
	}
	return n
}

// Image returns the converted image for path once it is ready.
func (l *Loader[T]) Image(path string) (T, bool) {
	img, ok := l.ready[path]
	return img, ok
}

// Size returns the pixel size of a ready image.
func (l *Loader[T]) Size(path string) (w, h int, ok bool) {
	s, ok := l.sizes[path]
	return s.X, s.Y, ok
}

// Err reports why path is unavailable: nil once ready, the decode error if
// it failed, ErrNotReady otherwise.
func (l *Loader[T]) Err(path string) error {
	if _, ok := l.ready[path]; ok {
		return nil
	}
	if err, ok := l.failed[path]; ok {
		return err
	}
	if cleanAssetPath(path) == "" {
		return ErrEmptyPath
	}
	return ErrNotReady
}

// Wait blocks until every requested decode has finished.
func (l *Loader[T]) Wait() error {
	return l.group.Wait()
}

// Close drops decodes that have not started yet.
func (l *Loader[T]) Close() {
	l.cancel()
}
