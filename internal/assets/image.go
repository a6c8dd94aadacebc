// internal/assets/image.go
package assets

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/types"
)

// Image is an immutable drawable sprite resource: the scaled surface
// plus the collision mask derived from it. Entities borrow these; the
// manager owns them.
type Image struct {
	W, H    int
	Mask    *Mask
	Surface *ebiten.Image
}

// Rect returns a rectangle of the image's size at the origin.
func (i *Image) Rect() types.Rect {
	return types.NewRect(0, 0, i.W, i.H)
}

// Draw blits the image with its top-left corner at (x, y).
func (i *Image) Draw(screen *ebiten.Image, x, y int) {
	if i.Surface == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(i.Surface, op)
}

// LoadImage loads an image file and scales it to the requested size.
// If both width and height are given the aspect ratio is ignored; if
// only one is given the other follows the original aspect ratio; if
// neither is given the image keeps its decoded size. A missing or
// undecodable file degrades to a 1x1 filler so the game never fails to
// start over a lost asset.
func LoadImage(dir, filename string, width, height int) *Image {
	src, err := decodeFile(filepath.Join(dir, filename))
	if err != nil {
		log.Printf("assets: can not open image %s: %v, using filler", filename, err)
		return fillerImage()
	}
	scaled := scaleImage(src, width, height)
	return &Image{
		W:       scaled.Bounds().Dx(),
		H:       scaled.Bounds().Dy(),
		Mask:    MaskFromImage(scaled),
		Surface: ebiten.NewImageFromImage(scaled),
	}
}

// NewOpaqueImage returns a surface-less fully opaque image of the given
// size. Tests use it to drive the registry without a graphics context.
func NewOpaqueImage(w, h int) *Image {
	return &Image{W: w, H: h, Mask: SolidMask(w, h)}
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func fillerImage() *Image {
	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	rgba.Set(0, 0, config.FillerColor)
	return &Image{
		W:       1,
		H:       1,
		Mask:    MaskFromImage(rgba),
		Surface: ebiten.NewImageFromImage(rgba),
	}
}

func scaleImage(src image.Image, width, height int) image.Image {
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()
	switch {
	case width > 0 && height > 0:
		// explicit size wins over the aspect ratio
	case width > 0:
		height = int(float64(width) * float64(srcH) / float64(srcW))
	case height > 0:
		width = int(float64(height) * float64(srcW) / float64(srcH))
	default:
		return src
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
