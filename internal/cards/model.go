// Package cards builds bingo cards from a pool of photos.
package cards

import (
	"image/color"
	"math/rand/v2"
)

// OutputDirName is the folder under the photo root that receives cards.
// Discovery skips it so generated cards are never reused as photos.
const OutputDirName = "bingo_cards"

const (
	DefaultTitle = "J&J's BINGO"
	DefaultCount = 10
)

var (
	Pink      = color.NRGBA{R: 255, G: 192, B: 203, A: 0xff}
	Lavender  = color.NRGBA{R: 210, G: 210, B: 235, A: 0xff}
	Mint      = color.NRGBA{R: 220, G: 240, B: 220, A: 0xff}
	LightBlue = color.NRGBA{R: 210, G: 230, B: 240, A: 0xff}
)

// Pastels is the multicolour palette.
var Pastels = []color.NRGBA{Pink, Lavender, Mint, LightBlue}

// Card is one composed card before it is written.
type Card struct {
	Number     int
	Title      string
	Background color.NRGBA
	Photos     []string
	Path       string
}

// PickBackground returns Pink, or a random pastel when multicolour is set.
func PickBackground(multicolour bool, rng *rand.Rand) color.NRGBA {
	if !multicolour {
		return Pink
	}
	return Pastels[rng.IntN(len(Pastels))]
}
