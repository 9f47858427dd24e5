package viewer

import (
	"image"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/bingoapp/internal/slideshow"
)

func TestActionForKey(t *testing.T) {
	cases := map[fyne.KeyName]Action{
		fyne.KeyReturn: ActionNext,
		fyne.KeyEnter:  ActionNext,
		fyne.KeyRight:  ActionNext,
		fyne.KeyLeft:   ActionPrev,
		fyne.KeyEscape: ActionQuit,
		fyne.KeyUp:     ActionNone,
		fyne.KeySpace:  ActionNone,
	}
	for key, want := range cases {
		assert.Equal(t, want, ActionForKey(key), string(key))
	}
}

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	writeSizedPNG(t, path, 320, 240, c)
}

func writeSizedPNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	require.NoError(t, imaging.Save(imaging.New(w, h, c), path))
}

func singleShow(t *testing.T, path string) *slideshow.Show {
	t.Helper()
	show, err := slideshow.New([]string{path}, nil)
	require.NoError(t, err)
	return show
}

func TestNavigationUpdatesFrame(t *testing.T) {
	dir := t.TempDir()
	paths := []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")}
	writePNG(t, paths[0], color.NRGBA{R: 255, A: 255})
	writePNG(t, paths[1], color.NRGBA{B: 255, A: 255})

	show, err := slideshow.New(paths, nil)
	require.NoError(t, err)

	a := test.NewApp()
	defer a.Quit()
	w := a.NewWindow("viewer")
	w.Resize(fyne.NewSize(800, 600))
	v := newApp(a, w, show)

	require.NotNil(t, v.photo.Image)
	assert.Equal(t, "1", v.number.Text)
	assert.Equal(t, "Bingo Photo Viewer - 1/2", w.Title())

	v.typedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, "2", v.number.Text)

	v.typedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, "2", v.number.Text)
	assert.Equal(t, "Bingo Photo Viewer - End of Slideshow (2/2)", w.Title())

	v.typedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	v.typedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.Equal(t, "1", v.number.Text)
}

func TestBrokenImageKeepsPreviousFrame(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	bad := filepath.Join(dir, "bad.png")
	writePNG(t, good, color.NRGBA{G: 255, A: 255})
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o644))

	show, err := slideshow.New([]string{good, bad}, rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)
	// start on the good photo regardless of shuffle order
	if _, p := show.Current(); p == bad {
		show.Next()
	}

	a := test.NewApp()
	defer a.Quit()
	w := a.NewWindow("viewer")
	w.Resize(fyne.NewSize(800, 600))
	v := newApp(a, w, show)
	before := v.photo.Image
	require.NotNil(t, before)

	if show.Position() == 1 {
		v.typedKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	} else {
		v.typedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	}
	_, p := show.Current()
	assert.Equal(t, bad, p)
	assert.Same(t, before, v.photo.Image)
}

func TestFrameFitsWindowPixels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.png")
	writeSizedPNG(t, path, 1600, 1200, color.NRGBA{R: 200, G: 50, B: 50, A: 255})

	a := test.NewApp()
	defer a.Quit()
	w := a.NewWindow("viewer")
	w.Resize(fyne.NewSize(800, 600))
	v := newApp(a, w, singleShow(t, path))

	require.NotNil(t, v.photo.Image)
	scale := w.Canvas().Scale()
	size := w.Canvas().Size()
	assert.Equal(t, image.Rect(0, 0, int(size.Width*scale), int(size.Height*scale)), v.photo.Image.Bounds())
}

func TestFrameRefitsWhenWindowGrows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.png")
	writeSizedPNG(t, path, 1600, 1200, color.NRGBA{G: 200, A: 255})

	a := test.NewApp()
	defer a.Quit()
	w := a.NewWindow("viewer")
	// before the window is shown the canvas is only a few pixels wide
	w.Resize(fyne.NewSize(9, 73))
	v := newApp(a, w, singleShow(t, path))
	assert.Nil(t, v.photo.Image, "no frame is fitted to an unsized canvas")

	w.Resize(fyne.NewSize(400, 400))
	require.NotNil(t, v.photo.Image)
	assert.Equal(t, image.Rect(0, 0, 400, 300), v.photo.Image.Bounds())
}

func TestSmallPhotoIsNotEnlarged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	red := color.NRGBA{R: 255, A: 255}
	writeSizedPNG(t, path, 100, 100, red)

	a := test.NewApp()
	defer a.Quit()
	w := a.NewWindow("viewer")
	w.Resize(fyne.NewSize(800, 600))
	v := newApp(a, w, singleShow(t, path))
	require.Equal(t, image.Rect(0, 0, 100, 100), v.photo.Image.Bounds())

	shot := w.Canvas().Capture()
	reds := 0
	b := shot.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := shot.At(x, y).RGBA()
			if r>>8 > 200 && g>>8 < 60 && bl>>8 < 60 {
				reds++
			}
		}
	}
	scale := float64(w.Canvas().Scale())
	assert.InDelta(t, 100*100*scale*scale, reds, 1000)
}
