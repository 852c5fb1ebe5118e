package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:data
	assetFS embed.FS
)

// FS exposes the embedded asset filesystem rooted at the assets directory.
func FS() fs.FS {
	return assetFS
}

// ImageLoader loads textures from an asset filesystem and caches them by path
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadImage decodes the image at path.
func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create image from bytes for %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// LoadTexture loads the image at path, or returns a flat placeholder of the
// given colour when it is missing or broken.
func (l *ImageLoader) LoadTexture(path string, fallback color.Color) *ebiten.Image {
	img, err := l.LoadImage(path)
	if err != nil {
		log.Printf("Warning: %v, using placeholder texture", err)
		img = ebiten.NewImage(16, 16)
		img.Fill(fallback)
		l.cache[path] = img
	}
	return img
}

var (
	imageLoader = NewImageLoader(assetFS)
)

// LoadTexture loads a texture from the embedded assets.
func LoadTexture(path string, fallback color.Color) *ebiten.Image {
	return imageLoader.LoadTexture(path, fallback)
}
