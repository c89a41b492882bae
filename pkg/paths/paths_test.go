package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/kataras/icon-fetcher/pkg/icon"
)

var testLayout = Layout{AndroidDir: "Droid/Resources", IOSDir: "iOS/Resources"}

func TestForAndroid(t *testing.T) {
	tests := []struct {
		name       string
		req        icon.Request
		wantSource string
	}{
		{
			name:       "defaults",
			req:        icon.Request{Name: "home", Color: icon.Black, Size: 24},
			wantSource: "ic_home_black_24dp.png",
		},
		{
			name:       "white 36",
			req:        icon.Request{Name: "directions_car", Color: icon.White, Size: 36},
			wantSource: "ic_directions_car_white_36dp.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForAndroid(tt.req, "/tmp/arc", "/proj", testLayout)
			if len(got) != 5 {
				t.Fatalf("ForAndroid() returned %d pairs, want 5", len(got))
			}

			wantDest := "ic_" + tt.req.Name + ".png"
			for i, pair := range got {
				dir := "drawable-" + Densities[i]
				wantSrc := filepath.Join("/tmp/arc", "android", dir, tt.wantSource)
				if pair.Source != wantSrc {
					t.Errorf("pair[%d].Source = %q, want %q", i, pair.Source, wantSrc)
				}
				wantDst := filepath.Join("/proj", "Droid/Resources", dir, wantDest)
				if pair.Destination != wantDst {
					t.Errorf("pair[%d].Destination = %q, want %q", i, pair.Destination, wantDst)
				}
				if pair.Platform != Android {
					t.Errorf("pair[%d].Platform = %q, want %q", i, pair.Platform, Android)
				}
			}
		})
	}
}

func TestForIOS(t *testing.T) {
	tests := []struct {
		name         string
		req          icon.Request
		wantImageset string
		wantFiles    []string
	}{
		{
			name:         "defaults",
			req:          icon.Request{Name: "home", Color: icon.Black, Size: 24},
			wantImageset: "ic_home.imageset",
			wantFiles:    []string{"ic_home.png", "ic_home_2x.png", "ic_home_3x.png"},
		},
		{
			name:         "white default size",
			req:          icon.Request{Name: "home", Color: icon.White, Size: 24},
			wantImageset: "ic_home_white.imageset",
			wantFiles:    []string{"ic_home_white.png", "ic_home_white_2x.png", "ic_home_white_3x.png"},
		},
		{
			name:         "black 36",
			req:          icon.Request{Name: "home", Color: icon.Black, Size: 36},
			wantImageset: "ic_home_36pt.imageset",
			wantFiles:    []string{"ic_home_36pt.png", "ic_home_36pt_2x.png", "ic_home_36pt_3x.png"},
		},
		{
			name:         "white 48",
			req:          icon.Request{Name: "add_a_photo", Color: icon.White, Size: 48},
			wantImageset: "ic_add_a_photo_white_48pt.imageset",
			wantFiles:    []string{"ic_add_a_photo_white_48pt.png", "ic_add_a_photo_white_48pt_2x.png", "ic_add_a_photo_white_48pt_3x.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForIOS(tt.req, "/tmp/arc", "/proj", testLayout)
			if len(got) != 3 {
				t.Fatalf("ForIOS() returned %d pairs, want 3", len(got))
			}

			destSuffixes := []string{"", "@2x", "@3x"}
			for i, pair := range got {
				wantSrc := filepath.Join("/tmp/arc", "ios", tt.wantImageset, tt.wantFiles[i])
				if pair.Source != wantSrc {
					t.Errorf("pair[%d].Source = %q, want %q", i, pair.Source, wantSrc)
				}
				wantDst := filepath.Join("/proj", "iOS/Resources", "ic_"+tt.req.Name+destSuffixes[i]+".png")
				if pair.Destination != wantDst {
					t.Errorf("pair[%d].Destination = %q, want %q", i, pair.Destination, wantDst)
				}
				if strings.Contains(filepath.Base(pair.Destination), "_2x") || strings.Contains(filepath.Base(pair.Destination), "_3x") {
					t.Errorf("pair[%d].Destination uses archive scale suffix: %q", i, pair.Destination)
				}
			}
		})
	}
}

func TestAllHomeScenario(t *testing.T) {
	req := icon.Request{Name: "home", Color: icon.Black, Size: 24}
	got := All(req, "/tmp/arc", "/proj", DefaultLayout)
	if len(got) != 8 {
		t.Fatalf("All() returned %d pairs, want 8", len(got))
	}

	mdpi := got[1]
	want := filepath.Join("/proj", DefaultLayout.AndroidDir, "drawable-mdpi", "ic_home.png")
	if mdpi.Destination != want {
		t.Errorf("mdpi destination = %q, want %q", mdpi.Destination, want)
	}

	for i, name := range []string{"ic_home.png", "ic_home@2x.png", "ic_home@3x.png"} {
		want := filepath.Join("/proj", DefaultLayout.IOSDir, name)
		if got[5+i].Destination != want {
			t.Errorf("ios destination[%d] = %q, want %q", i, got[5+i].Destination, want)
		}
	}
}

func TestPairCountsForEveryVariant(t *testing.T) {
	for _, c := range []icon.Color{icon.Black, icon.White} {
		for _, size := range icon.Sizes {
			req := icon.Request{Name: "home", Color: c, Size: size}

			android := ForAndroid(req, "/tmp/arc", "/proj", testLayout)
			if len(android) != 5 {
				t.Errorf("%s: ForAndroid() returned %d pairs, want 5", req, len(android))
			}
			ios := ForIOS(req, "/tmp/arc", "/proj", testLayout)
			if len(ios) != 3 {
				t.Errorf("%s: ForIOS() returned %d pairs, want 3", req, len(ios))
			}

			for _, pair := range append(android, ios...) {
				base := filepath.Base(pair.Destination)
				if strings.Contains(base, string(c)) || strings.Contains(base, "dp") || strings.Contains(base, "pt") {
					t.Errorf("%s: destination %q carries color or size", req, base)
				}
			}
		}
	}
}

func TestDestinationScale(t *testing.T) {
	tests := map[string]string{"": "", "_2x": "@2x", "_3x": "@3x"}
	for in, want := range tests {
		if got := DestinationScale(in); got != want {
			t.Errorf("DestinationScale(%q) = %q, want %q", in, got, want)
		}
	}
}
