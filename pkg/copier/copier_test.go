package copier

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kataras/icon-fetcher/pkg/paths"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src", "a.png")
	writeFile(t, src, "png-data")

	dstDir := filepath.Join(dir, "dst")
	if err := os.Mkdir(dstDir, 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("copies and overwrites", func(t *testing.T) {
		dst := filepath.Join(dstDir, "a.png")
		writeFile(t, dst, "old content that is longer")

		n, err := CopyFile(src, dst)
		if err != nil {
			t.Fatalf("CopyFile() error = %v", err)
		}
		if n != int64(len("png-data")) {
			t.Errorf("CopyFile() = %d, want %d", n, len("png-data"))
		}
		data, _ := os.ReadFile(dst)
		if string(data) != "png-data" {
			t.Errorf("destination content = %q, want %q", data, "png-data")
		}
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := CopyFile(filepath.Join(dir, "nope.png"), filepath.Join(dstDir, "b.png"))
		if !errors.Is(err, ErrSourceMissing) {
			t.Errorf("CopyFile() error = %v, want ErrSourceMissing", err)
		}
	})

	t.Run("missing destination directory", func(t *testing.T) {
		dst := filepath.Join(dir, "not-there", "a.png")
		_, err := CopyFile(src, dst)
		if !errors.Is(err, ErrDestDirMissing) {
			t.Errorf("CopyFile() error = %v, want ErrDestDirMissing", err)
		}
		if _, statErr := os.Stat(filepath.Dir(dst)); !os.IsNotExist(statErr) {
			t.Errorf("destination directory must not be created")
		}
	})
}

func TestCopyAll(t *testing.T) {
	dir := t.TempDir()
	var pairs []paths.PathPair
	for _, density := range paths.Densities {
		src := filepath.Join(dir, "archive", density, "ic_home_black_24dp.png")
		writeFile(t, src, density)
		dstDir := filepath.Join(dir, "project", "drawable-"+density)
		if err := os.MkdirAll(dstDir, 0755); err != nil {
			t.Fatal(err)
		}
		pairs = append(pairs, paths.PathPair{
			Platform:    paths.Android,
			Variant:     density,
			Source:      src,
			Destination: filepath.Join(dstDir, "ic_home.png"),
		})
	}

	var (
		mu     sync.Mutex
		copied []string
	)
	total, err := CopyAll(context.Background(), pairs, 2, func(p paths.PathPair) {
		mu.Lock()
		copied = append(copied, p.Variant)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("CopyAll() error = %v", err)
	}
	if len(copied) != len(pairs) {
		t.Errorf("CopyAll() reported %d copies, want %d", len(copied), len(pairs))
	}

	var want int64
	for _, density := range paths.Densities {
		want += int64(len(density))
		data, err := os.ReadFile(filepath.Join(dir, "project", "drawable-"+density, "ic_home.png"))
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != density {
			t.Errorf("%s content = %q, want %q", density, data, density)
		}
	}
	if total != want {
		t.Errorf("CopyAll() total = %d, want %d", total, want)
	}

	// A second run overwrites the same files without creating new ones.
	if _, err := CopyAll(context.Background(), pairs, 2, nil); err != nil {
		t.Fatalf("second CopyAll() error = %v", err)
	}
	entries, _ := os.ReadDir(filepath.Join(dir, "project", "drawable-mdpi"))
	if len(entries) != 1 {
		t.Errorf("drawable-mdpi has %d entries after two runs, want 1", len(entries))
	}
}

func TestCopyAllFailsFast(t *testing.T) {
	dir := t.TempDir()
	dstDir := filepath.Join(dir, "dst")
	if err := os.Mkdir(dstDir, 0755); err != nil {
		t.Fatal(err)
	}

	pairs := []paths.PathPair{
		{Variant: "missing", Source: filepath.Join(dir, "missing.png"), Destination: filepath.Join(dstDir, "a.png")},
	}

	_, err := CopyAll(context.Background(), pairs, 1, nil)
	var pe *PairError
	if !errors.As(err, &pe) {
		t.Fatalf("CopyAll() error = %v, want *PairError", err)
	}
	if pe.Pair.Variant != "missing" {
		t.Errorf("PairError.Pair.Variant = %q, want %q", pe.Pair.Variant, "missing")
	}
	if !errors.Is(err, ErrSourceMissing) {
		t.Errorf("CopyAll() error = %v, want ErrSourceMissing", err)
	}
}
