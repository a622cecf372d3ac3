package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Writer writes a set of artifacts as a unit: every artifact is first
// staged to a temporary file next to its destination, and the staged files
// are renamed into place only after all of them were written. A staging
// failure leaves the destinations untouched. If a rename fails, the files
// renamed before it are restored to their previous content.
type Writer struct {
	outDir  string
	workers int

	mu      sync.Mutex
	metrics *WriterMetrics
}

// WriterMetrics tracks the outcome of the last Write.
type WriterMetrics struct {
	FilesWritten   int
	FilesUnchanged int
	TotalBytes     int64
}

// NewWriter creates a writer rooted at outDir.
func NewWriter(outDir string) *Writer {
	return &Writer{
		outDir:  outDir,
		workers: runtime.GOMAXPROCS(0),
		metrics: &WriterMetrics{},
	}
}

// WithWorkers sets the number of parallel workers.
func (w *Writer) WithWorkers(n int) *Writer {
	if n > 0 {
		w.workers = n
	}
	return w
}

// Metrics returns the write metrics.
func (w *Writer) Metrics() *WriterMetrics {
	return w.metrics
}

type staged struct {
	tmp  string
	path string
	// prev is the replaced content; nil when the destination did not exist.
	prev []byte
}

// Write stages and commits artifacts. Artifacts whose destination already
// holds the same bytes are left alone.
func (w *Writer) Write(ctx context.Context, artifacts []Artifact) error {
	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return NewGenerationError("write", w.outDir, "create output directory", err)
	}
	w.mu.Lock()
	w.metrics = &WriterMetrics{}
	w.mu.Unlock()

	stages := make([]*staged, len(artifacts))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for i, a := range artifacts {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			s, err := w.stage(a)
			if err != nil {
				return err
			}
			stages[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		discard(stages)
		return err
	}
	for i, s := range stages {
		if s == nil {
			continue
		}
		if err := os.Rename(s.tmp, s.path); err != nil {
			discard(stages[i:])
			rerr := restore(stages[:i])
			return NewGenerationError("write", s.path, "commit staged file", errors.Join(err, rerr))
		}
	}
	return nil
}

// restore puts back the content replaced by committed stages.
func restore(committed []*staged) error {
	var errs []error
	for _, s := range committed {
		if s == nil {
			continue
		}
		if s.prev == nil {
			if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
				errs = append(errs, err)
			}
			continue
		}
		if err := os.WriteFile(s.path, s.prev, 0o644); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// stage writes a to a temporary file. It returns nil when the destination
// is already up to date.
func (w *Writer) stage(a Artifact) (*staged, error) {
	path := filepath.Join(w.outDir, a.Path)
	cur, err := os.ReadFile(path)
	if err == nil && bytes.Equal(cur, a.Text) {
		w.mu.Lock()
		w.metrics.FilesUnchanged++
		w.mu.Unlock()
		return nil, nil
	}
	var prev []byte
	if err == nil {
		prev = append([]byte{}, cur...)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, NewGenerationError("write", a.Path, "create directory", err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, NewGenerationError("write", a.Path, "create staging file", err)
	}
	_, werr := f.Write(a.Text)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(f.Name())
		return nil, NewGenerationError("write", a.Path, "stage", err)
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		_ = os.Remove(f.Name())
		return nil, NewGenerationError("write", a.Path, fmt.Sprintf("chmod %s", f.Name()), err)
	}
	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(a.Text))
	w.mu.Unlock()
	return &staged{tmp: f.Name(), path: path, prev: prev}, nil
}

// discard removes staged files (errors intentionally ignored as we're
// already in error state).
func discard(stages []*staged) {
	for _, s := range stages {
		if s != nil {
			_ = os.Remove(s.tmp)
		}
	}
}
