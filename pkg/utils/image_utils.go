package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// FitRect scales a srcW x srcH image to fit inside box while keeping its
// aspect ratio, and centers it. It returns the scale factor and the top-left
// corner of the scaled image. Images smaller than box are scaled up.
func FitRect(srcW, srcH int, box image.Rectangle) (scale, x, y float64) {
	if srcW <= 0 || srcH <= 0 || box.Empty() {
		return 0, float64(box.Min.X), float64(box.Min.Y)
	}
	sx := float64(box.Dx()) / float64(srcW)
	sy := float64(box.Dy()) / float64(srcH)
	scale = min(sx, sy)

	w := float64(srcW) * scale
	h := float64(srcH) * scale
	x = float64(box.Min.X) + (float64(box.Dx())-w)/2
	y = float64(box.Min.Y) + (float64(box.Dy())-h)/2
	return scale, x, y
}

// DrawImageFitted draws img scaled into box with linear filtering.
func DrawImageFitted(dst, img *ebiten.Image, box image.Rectangle) {
	if img == nil {
		return
	}
	b := img.Bounds()
	scale, x, y := FitRect(b.Dx(), b.Dy(), box)
	if scale == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
