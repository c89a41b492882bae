package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafePath is returned for entries that would be written outside of the destination.
var ErrUnsafePath = errors.New("unsafe path in archive")

// Extracted describes a materialized archive.
type Extracted struct {
	Dir   string   // extraction directory
	Root  string   // archive root, see Root
	Files []string // extracted regular files
	Size  int64    // total uncompressed bytes written
}

// Extract unpacks the zip file src into destDir, creating it if needed.
func Extract(src, destDir string) (*Extracted, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		if errors.Is(err, zip.ErrInsecurePath) {
			// zipinsecurepath=0 rejects the archive up front.
			if r != nil {
				r.Close()
			}
			return nil, fmt.Errorf("%w: %q: %v", ErrUnsafePath, src, err)
		}
		return nil, fmt.Errorf("failed to open archive %q: %w", src, err)
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %q: %w", destDir, err)
	}

	result := &Extracted{Dir: destDir}
	names := make([]string, 0, len(r.File))

	for _, f := range r.File {
		target, err := safeJoin(destDir, f.Name)
		if err != nil {
			return nil, err
		}
		names = append(names, f.Name)

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return nil, fmt.Errorf("failed to create directory %q: %w", target, err)
			}
			continue
		}

		n, err := extractFile(f, target)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, target)
		result.Size += n
	}

	result.Root = filepath.Join(destDir, Root(names))
	return result, nil
}

// Root returns the single top-level directory shared by every entry name,
// or "" if the entries do not share one or it holds no android or ios
// directory.
func Root(names []string) string {
	root := ""
	platforms := false
	for _, name := range names {
		name = strings.TrimPrefix(filepath.ToSlash(name), "./")
		if name == "" {
			continue
		}
		first, rest, found := strings.Cut(name, "/")
		if !found {
			return "" // a file at the top level
		}
		if root == "" {
			root = first
		} else if root != first {
			return ""
		}
		child, _, _ := strings.Cut(rest, "/")
		if child == "android" || child == "ios" {
			platforms = true
		}
	}
	if !platforms {
		return ""
	}
	return root
}

func extractFile(f *zip.File, target string) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return 0, fmt.Errorf("failed to create directory %q: %w", filepath.Dir(target), err)
	}

	rc, err := f.Open()
	if err != nil {
		return 0, fmt.Errorf("failed to open %q in archive: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to create file %q: %w", target, err)
	}

	n, err := io.Copy(out, rc)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("failed to extract %q: %w", f.Name, err)
	}

	return n, nil
}

func safeJoin(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(name) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, name)
	}
	return target, nil
}
