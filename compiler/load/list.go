// Package load reads the line-oriented name lists consumed by the generator.
//
// A list holds one name per line. Blank lines and lines whose first
// non-space character is '#' are ignored. Every other line is kept,
// trimmed, in file order.
package load

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrUnavailable reports that a name list could not be opened or read.
var ErrUnavailable = errors.New("namegen: name list unavailable")

// Error describes a failure to read a single name list.
type Error struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("namegen: load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether the target matches ErrUnavailable.
func (e *Error) Is(target error) bool {
	return target == ErrUnavailable
}

// List is an ordered name list read from Path.
type List struct {
	Path  string
	Names []string
}

// Keep reports whether a trimmed line carries a name.
func Keep(line string) bool {
	return line != "" && line[0] != '#'
}

// Lines yields the names of r in order. Iteration stops at the first read
// error, which is then reported by the returned func.
func Lines(r io.Reader) (iter.Seq[string], func() error) {
	var err error
	seq := func(yield func(string) bool) {
		s := bufio.NewScanner(r)
		for s.Scan() {
			line := strings.TrimSpace(s.Text())
			if !Keep(line) {
				continue
			}
			if !yield(line) {
				return
			}
		}
		err = s.Err()
	}
	return seq, func() error { return err }
}

// Parse reads all names of r.
func Parse(r io.Reader) ([]string, error) {
	seq, errf := Lines(r)
	names := []string{}
	for name := range seq {
		names = append(names, name)
	}
	return names, errf()
}

// Load reads the name list stored at path.
func Load(ctx context.Context, path string) (*List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	defer f.Close()
	names, err := Parse(f)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return &List{Path: path, Names: names}, nil
}

// LoadAll reads every list concurrently. The result preserves the argument
// order. The first failure cancels the remaining reads.
func LoadAll(ctx context.Context, paths ...string) ([]*List, error) {
	lists := make([]*List, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		eg.Go(func() error {
			l, err := Load(ctx, p)
			if err != nil {
				return err
			}
			lists[i] = l
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}
