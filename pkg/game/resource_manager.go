package game

import (
	"image"
	"reflect"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/carquiz/pkg/quiz"
)

// FontID names the faces the scenes draw with.
type FontID int

const (
	// FontBody is the unicode bitmap face used for labels and typed answers.
	FontBody FontID = iota
	// FontSmall is the compact face used for hints and the status line.
	FontSmall
)

// ResourceManager converts catalog images to GPU images and hands out font
// faces. Both are created once and cached.
//
// It is not safe for concurrent use; the game loop is single-threaded.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image
	sourceCache   map[image.Image]*ebiten.Image // entries without a Path, keyed by the source image
	fontFaceCache map[FontID]text.Face
}

// NewResourceManager creates a resource manager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		sourceCache:   make(map[image.Image]*ebiten.Image),
		fontFaceCache: make(map[FontID]text.Face),
	}
}

// EntryImage returns the Ebitengine image of a catalog entry, converting it on
// first use. Entries are cached by Path, or by source image when Path is empty.
func (rm *ResourceManager) EntryImage(entry quiz.CarEntry) *ebiten.Image {
	if entry.Image == nil {
		return nil
	}
	if entry.Path == "" {
		return rm.sourceImage(entry.Image)
	}
	if img, ok := rm.imageCache[entry.Path]; ok {
		return img
	}
	img := toEbitenImage(entry.Image)
	rm.imageCache[entry.Path] = img
	return img
}

// Preload converts every image of a difficulty so the first frame of a
// session does not stall.
func (rm *ResourceManager) Preload(entries []quiz.CarEntry) {
	for _, e := range entries {
		rm.EntryImage(e)
	}
}

// sourceImage caches by the source image itself. Only pointer images are
// usable as map keys; anything else is converted every time.
func (rm *ResourceManager) sourceImage(src image.Image) *ebiten.Image {
	if reflect.TypeOf(src).Kind() != reflect.Pointer {
		return toEbitenImage(src)
	}
	if img, ok := rm.sourceCache[src]; ok {
		return img
	}
	img := toEbitenImage(src)
	rm.sourceCache[src] = img
	return img
}

// CachedImages returns the number of converted images.
func (rm *ResourceManager) CachedImages() int {
	return len(rm.imageCache) + len(rm.sourceCache)
}

func toEbitenImage(img image.Image) *ebiten.Image {
	if eimg, ok := img.(*ebiten.Image); ok {
		return eimg
	}
	return ebiten.NewImageFromImage(img)
}

// Font returns the face for id, falling back to FontBody for unknown ids.
func (rm *ResourceManager) Font(id FontID) text.Face {
	if id != FontSmall {
		id = FontBody
	}
	if face, ok := rm.fontFaceCache[id]; ok {
		return face
	}

	var face text.Face
	if id == FontSmall {
		face = text.NewGoXFace(basicfont.Face7x13)
	} else {
		face = text.NewGoXFace(bitmapfont.Face)
	}
	rm.fontFaceCache[id] = face
	return face
}
