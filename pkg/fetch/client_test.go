package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClientURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		file    string
		want    string
	}{
		{
			name:    "default base",
			baseURL: "",
			file:    "ic_home_black_24dp.zip",
			want:    DefaultBaseURL + "ic_home_black_24dp.zip",
		},
		{
			name:    "base without trailing slash",
			baseURL: "https://example.com/zip",
			file:    "ic_home_black_24dp.zip",
			want:    "https://example.com/zip/ic_home_black_24dp.zip",
		},
		{
			name:    "base with trailing slash",
			baseURL: "https://example.com/zip/",
			file:    "a.zip",
			want:    "https://example.com/zip/a.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.baseURL, 0)
			if got := c.URL(tt.file); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/icons/ic_home_black_24dp.zip":
			w.Write([]byte("zip-bytes"))
		default:
			http.Error(w, "no such key", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/icons/", time.Second)
	dir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		dest := filepath.Join(dir, "ok.zip")
		n, err := c.Download(context.Background(), "ic_home_black_24dp.zip", dest)
		if err != nil {
			t.Fatalf("Download() error = %v", err)
		}
		if n != int64(len("zip-bytes")) {
			t.Errorf("Download() wrote %d bytes, want %d", n, len("zip-bytes"))
		}
		data, err := os.ReadFile(dest)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "zip-bytes" {
			t.Errorf("downloaded content = %q, want %q", data, "zip-bytes")
		}
	})

	t.Run("not found", func(t *testing.T) {
		dest := filepath.Join(dir, "missing.zip")
		_, err := c.Download(context.Background(), "ic_nope_black_24dp.zip", dest)
		if err == nil {
			t.Fatal("Download() error = nil, want StatusError")
		}
		if !IsNotFound(err) {
			t.Errorf("IsNotFound(%v) = false, want true", err)
		}
		var se *StatusError
		if !errors.As(err, &se) || se.Body != "no such key" {
			t.Errorf("StatusError body = %+v, want %q", se, "no such key")
		}
		if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
			t.Errorf("destination should not exist after a failed download, stat err = %v", statErr)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		dest := filepath.Join(dir, "canceled.zip")
		if _, err := c.Download(ctx, "ic_home_black_24dp.zip", dest); err == nil {
			t.Fatal("Download() error = nil, want context error")
		}
		if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
			t.Errorf("destination should not exist after a failed download, stat err = %v", statErr)
		}
	})
}
