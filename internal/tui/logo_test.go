package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestFitCells(t *testing.T) {
	tests := []struct {
		name             string
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{"wide", 700, 200, 60, 28, 60, 17},
		{"tall", 100, 400, 60, 28, 7, 28},
		{"tiny", 1000, 1, 10, 10, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitCells(tt.w, tt.h, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("fitCells() = %d, %d; want %d, %d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSampleBlendsTransparencyOverWhite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	// (1,0) stays fully transparent

	if got := sample(img, 0, 0, 2, 1); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("opaque pixel = %v", got)
	}
	if got := sample(img, 1, 0, 2, 1); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("transparent pixel = %v, want white", got)
	}
}

func TestRenderLogoShape(t *testing.T) {
	out := RenderLogo(solid(color.Black, 20, 10), 10, 10)
	lines := strings.Split(out, "\n")
	// 20x10 into 10 columns -> 10x5 pixels -> 3 rows of half blocks
	if len(lines) != 3 {
		t.Fatalf("got %d rows, want 3", len(lines))
	}
	for i, l := range lines {
		if n := strings.Count(l, halfBlock); n != 10 {
			t.Errorf("row %d has %d cells, want 10", i, n)
		}
	}
}

func TestRenderLogoEmpty(t *testing.T) {
	if RenderLogo(nil, 10, 10) != "" {
		t.Error("nil image should render nothing")
	}
	if RenderLogo(solid(color.Black, 4, 4), 0, 10) != "" {
		t.Error("zero width should render nothing")
	}
}
