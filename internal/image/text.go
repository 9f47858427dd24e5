package imagepkg

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	boldOnce sync.Once
	boldFont *truetype.Font
	boldErr  error
)

// BoldFace returns the bundled Go Bold font at the given point size.
func BoldFace(points float64) (font.Face, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = truetype.Parse(gobold.TTF)
	})
	if boldErr != nil {
		return nil, fmt.Errorf("parsing bundled font: %w", boldErr)
	}
	return truetype.NewFace(boldFont, &truetype.Options{Size: points}), nil
}
