package imagepkg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// White is the matte used when flattening transparent images.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// OpenImage decodes the file at path, applying any EXIF orientation.
func OpenImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return img, nil
}

// Flatten composites img over an opaque white background.
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), White)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

// FitToScreen scales img down to fit within w x h keeping its aspect ratio.
// Images already inside the bounds are returned unscaled. The viewer and the
// load probe both fit decoded photos through here.
func FitToScreen(img image.Image, w, h int) *image.NRGBA {
	return imaging.Fit(img, w, h, imaging.Lanczos)
}
