package copier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kataras/icon-fetcher/pkg/paths"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrSourceMissing means the archive does not contain the expected file,
	// typically because the icon does not exist in that color or size.
	ErrSourceMissing = errors.New("source file does not exist")
	// ErrDestDirMissing means the project layout does not match the configured resource roots.
	ErrDestDirMissing = errors.New("destination directory does not exist")
)

// DefaultParallel is the number of concurrent copies within one stage.
const DefaultParallel = 4

// PairError reports the pair that failed to copy.
type PairError struct {
	Pair paths.PathPair
	Err  error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("copy %s (%s): %v", e.Pair.Destination, e.Pair.Variant, e.Err)
}

func (e *PairError) Unwrap() error { return e.Err }

// CopyFile copies src to dst, overwriting dst. The parent directory of dst
// must already exist: the project layout is never created on the fly.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrSourceMissing, src)
		}
		return 0, fmt.Errorf("failed to open source file %q: %w", src, err)
	}
	defer in.Close()

	dir := filepath.Dir(dst)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrDestDirMissing, dir)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file %q: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("failed to copy %q to %q: %w", src, dst, err)
	}

	return n, nil
}

// CopyAll copies every pair with at most parallel concurrent copies and
// waits for all of them before returning. The first failure cancels the
// copies that have not started yet and is returned as a *PairError.
// Files copied before the failure are left in place.
// onCopied may be called concurrently.
func CopyAll(ctx context.Context, pairs []paths.PathPair, parallel int, onCopied func(paths.PathPair)) (int64, error) {
	if parallel <= 0 {
		parallel = DefaultParallel
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	written := make([]int64, len(pairs))
	for i, pair := range pairs {
		i, pair := i, pair
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			n, err := CopyFile(pair.Source, pair.Destination)
			if err != nil {
				return &PairError{Pair: pair, Err: err}
			}
			written[i] = n

			if onCopied != nil {
				onCopied(pair)
			}
			return nil
		})
	}

	err := g.Wait()

	var total int64
	for _, n := range written {
		total += n
	}
	return total, err
}
