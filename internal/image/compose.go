// Package imagepkg holds the raster work: opening and fitting photos,
// thumbnails, and composing bingo cards.
package imagepkg

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Layout describes the geometry of a card in pixels.
type Layout struct {
	Grid        int
	CellSize    int
	BorderWidth int
	Padding     int
	TitleHeight int
	Checkbox    int
	TitlePoints float64
	QRSize      int
}

// DefaultLayout is the 5x5 card.
var DefaultLayout = Layout{
	Grid:        5,
	CellSize:    200,
	BorderWidth: 4,
	Padding:     40,
	TitleHeight: 80,
	Checkbox:    30,
	TitlePoints: 48,
	QRSize:      64,
}

var (
	BorderColor     = color.NRGBA{A: 0xff}
	TitleColor      = color.NRGBA{R: 80, G: 80, B: 80, A: 0xff}
	CheckboxColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	CheckboxOutline = color.NRGBA{A: 0xff}
)

func (l Layout) Cells() int { return l.Grid * l.Grid }

func (l Layout) gridSpan() int {
	return l.CellSize*l.Grid + l.BorderWidth*(l.Grid+1)
}

func (l Layout) Width() int  { return l.gridSpan() + 2*l.Padding }
func (l Layout) Height() int { return l.TitleHeight + l.gridSpan() + 2*l.Padding }

// CellOrigin is the top-left pixel of the photo in cell (row, col).
func (l Layout) CellOrigin(row, col int) image.Point {
	return image.Pt(
		l.Padding+col*(l.CellSize+l.BorderWidth)+l.BorderWidth,
		l.TitleHeight+l.Padding+row*(l.CellSize+l.BorderWidth)+l.BorderWidth,
	)
}

// CheckboxRect is the checkbox drawn over the bottom of cell (row, col).
func (l Layout) CheckboxRect(row, col int) image.Rectangle {
	o := l.CellOrigin(row, col)
	x := o.X + (l.CellSize-l.Checkbox)/2
	y := o.Y + l.CellSize - l.Checkbox - 5
	return image.Rect(x, y, x+l.Checkbox, y+l.Checkbox)
}

// CardSpec is everything needed to draw one card.
type CardSpec struct {
	Layout     Layout
	Title      string
	Background color.Color
	// Thumbs holds Layout.Cells() images in row-major order, each
	// CellSize square.
	Thumbs []image.Image
	// QR is drawn in the banner's right corner when set.
	QR image.Image
}

// fitQR shrinks a QR code to QRSize and the banner height. go-qrcode
// returns a larger image than asked for when the text needs more modules.
func fitQR(qr image.Image, l Layout) image.Image {
	limit := l.QRSize
	if l.TitleHeight < limit {
		limit = l.TitleHeight
	}
	b := qr.Bounds()
	if b.Dx() <= limit && b.Dy() <= limit {
		return qr
	}
	return imaging.Fit(qr, limit, limit, imaging.NearestNeighbor)
}

// ComposeCard draws the banner, the bordered grid and the checkboxes.
func ComposeCard(spec CardSpec) (image.Image, error) {
	l := spec.Layout
	if len(spec.Thumbs) != l.Cells() {
		return nil, errors.New("thumbnail count does not match the grid")
	}
	w, h := l.Width(), l.Height()
	dc := gg.NewContext(w, h)
	dc.SetColor(spec.Background)
	dc.Clear()

	face, err := BoldFace(l.TitlePoints)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)
	dc.SetColor(TitleColor)
	dc.DrawStringAnchored(spec.Title, float64(w)/2, float64(l.TitleHeight)/2, 0.5, 0.5)

	if spec.QR != nil {
		qr := fitQR(spec.QR, l)
		qb := qr.Bounds()
		x := w - l.Padding - qb.Dx()
		y := (l.TitleHeight - qb.Dy()) / 2
		dc.DrawImage(qr, x, y)
	}

	bw := float64(l.BorderWidth)
	cs := float64(l.CellSize)
	for row := 0; row < l.Grid; row++ {
		for col := 0; col < l.Grid; col++ {
			o := l.CellOrigin(row, col)
			dc.SetColor(BorderColor)
			dc.DrawRectangle(float64(o.X)-bw, float64(o.Y)-bw, cs+2*bw, cs+2*bw)
			dc.Fill()

			dc.DrawImage(spec.Thumbs[row*l.Grid+col], o.X, o.Y)

			cb := l.CheckboxRect(row, col)
			dc.SetColor(CheckboxColor)
			dc.DrawRectangle(float64(cb.Min.X), float64(cb.Min.Y), float64(cb.Dx()), float64(cb.Dy()))
			dc.Fill()
			dc.SetColor(CheckboxOutline)
			dc.SetLineWidth(2)
			// inset by half the stroke so the outline stays inside the box
			dc.DrawRectangle(float64(cb.Min.X)+1, float64(cb.Min.Y)+1, float64(cb.Dx())-2, float64(cb.Dy())-2)
			dc.Stroke()
		}
	}
	return dc.Image(), nil
}
