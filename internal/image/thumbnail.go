package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
)

// PlaceholderGray fills cells whose photo could not be processed.
var PlaceholderGray = color.NRGBA{R: 200, G: 200, B: 200, A: 0xff}

// Thumbnail turns img into a size x size square: flatten onto white,
// shrink to fit 2*size, crop the centre square, then resize exactly.
func Thumbnail(img image.Image, size int) *image.NRGBA {
	flat := Flatten(img)
	flat = imaging.Fit(flat, size*2, size*2, imaging.Lanczos)
	b := flat.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	sq := imaging.CropCenter(flat, side, side)
	return imaging.Resize(sq, size, size, imaging.Lanczos)
}

// Placeholder returns a solid gray square.
func Placeholder(size int) *image.NRGBA {
	return imaging.New(size, size, PlaceholderGray)
}

// ThumbnailFile opens path and thumbnails it. On failure it logs, returns a
// placeholder and ok=false so one bad photo never aborts a card.
func ThumbnailFile(path string, size int) (thumb image.Image, ok bool) {
	img, err := OpenImage(path)
	if err != nil {
		log.WithFields(log.Fields{"path": path, "error": err}).Warn("using placeholder thumbnail")
		return Placeholder(size), false
	}
	return Thumbnail(img, size), true
}
