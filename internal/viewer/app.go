// Package viewer is the fullscreen slideshow window.
package viewer

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	log "github.com/sirupsen/logrus"

	imagepkg "github.com/youruser/bingoapp/internal/image"
	"github.com/youruser/bingoapp/internal/slideshow"
)

const (
	numberSize   = 48
	numberMargin = 50
	shadowOffset = 2
	// canvases smaller than this have not been laid out by the window yet
	minLayoutSize = 200
)

// Action is what a key press asks the viewer to do.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionQuit
)

// ActionForKey maps key names to viewer actions.
func ActionForKey(key fyne.KeyName) Action {
	switch key {
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeyRight:
		return ActionNext
	case fyne.KeyLeft:
		return ActionPrev
	case fyne.KeyEscape:
		return ActionQuit
	}
	return ActionNone
}

// App owns the fyne window and the slideshow state.
type App struct {
	app    fyne.App
	win    fyne.Window
	show   *slideshow.Show
	photo  *canvas.Image
	center *fyne.Container
	number *canvas.Text
	shadow *canvas.Text

	// source is the decoded current photo, refitted whenever area changes.
	source image.Image
	area   fyne.Size
}

// screenLayout stretches every object over the window and reports size
// changes so the photo can be refitted once the window goes fullscreen.
type screenLayout struct {
	onResize func(fyne.Size)
	last     fyne.Size
}

func (l *screenLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
	if size != l.last {
		l.last = size
		l.onResize(size)
	}
}

// MinSize is zero so the fitted photo never forces the window to grow.
func (l *screenLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

// Run opens the window for the given photos and blocks until it closes.
// An empty list shows an error dialog and quits once it is dismissed.
func Run(dir string, paths []string) {
	a := app.New()
	w := a.NewWindow("Bingo Photo Viewer")
	w.SetFullScreen(true)

	show, err := slideshow.New(paths, nil)
	if err != nil {
		d := dialog.NewError(fmt.Errorf("no images found in %s", dir), w)
		d.SetOnClosed(a.Quit)
		d.Show()
		w.ShowAndRun()
		return
	}

	newApp(a, w, show)
	w.ShowAndRun()
}

func newApp(a fyne.App, w fyne.Window, show *slideshow.Show) *App {
	v := &App{app: a, win: w, show: show}
	w.SetPadded(false)
	w.SetContent(v.build())
	w.Canvas().SetOnTypedKey(v.typedKey)
	v.display()
	return v
}

func (v *App) build() fyne.CanvasObject {
	bg := canvas.NewRectangle(color.Black)

	// the raster is already fitted; the min size pins it to its pixel size
	v.photo = canvas.NewImageFromImage(nil)
	v.photo.FillMode = canvas.ImageFillContain
	v.photo.ScaleMode = canvas.ImageScaleSmooth
	v.center = container.NewCenter(v.photo)

	v.shadow = canvas.NewText("", color.Black)
	v.number = canvas.NewText("", color.White)
	for _, t := range []*canvas.Text{v.shadow, v.number} {
		t.TextSize = numberSize
		t.TextStyle = fyne.TextStyle{Bold: true}
	}
	v.shadow.Move(fyne.NewPos(numberMargin+shadowOffset, numberMargin+shadowOffset))
	v.number.Move(fyne.NewPos(numberMargin, numberMargin))

	overlay := container.NewWithoutLayout(v.shadow, v.number)
	return container.New(&screenLayout{onResize: v.resized}, bg, v.center, overlay)
}

func (v *App) resized(size fyne.Size) {
	v.area = size
	v.refit()
}

func (v *App) typedKey(ev *fyne.KeyEvent) {
	switch ActionForKey(ev.Name) {
	case ActionNext:
		if v.show.Next() {
			v.display()
		} else {
			v.win.SetTitle(v.show.Title())
			log.Info("end of list reached")
		}
	case ActionPrev:
		if v.show.Prev() {
			v.display()
		}
	case ActionQuit:
		v.app.Quit()
	}
}

// screenPixels is the laid-out window size in device pixels. ok is false
// until the window has been given a real size.
func (v *App) screenPixels() (w, h int, ok bool) {
	if v.area.Width < minLayoutSize || v.area.Height < minLayoutSize {
		return 0, 0, false
	}
	scale := v.win.Canvas().Scale()
	return int(v.area.Width * scale), int(v.area.Height * scale), true
}

// display loads the current photo. On failure the previous frame stays.
func (v *App) display() {
	v.win.SetTitle(v.show.Title())
	_, path := v.show.Current()
	img, err := imagepkg.OpenImage(path)
	if err != nil {
		log.WithFields(log.Fields{"path": path, "error": err}).Error("error processing image")
		return
	}
	v.source = img
	label := fmt.Sprint(v.show.Position())
	v.shadow.Text = label
	v.number.Text = label
	v.shadow.Refresh()
	v.number.Refresh()
	v.refit()
}

// refit shrinks the current photo to the window and shows it centered at
// its fitted pixel size. Photos smaller than the window are not enlarged.
func (v *App) refit() {
	if v.source == nil {
		return
	}
	w, h, ok := v.screenPixels()
	if !ok {
		return
	}
	fitted := imagepkg.FitToScreen(v.source, w, h)
	scale := v.win.Canvas().Scale()
	b := fitted.Bounds()
	v.photo.Image = fitted
	v.photo.SetMinSize(fyne.NewSize(float32(b.Dx())/scale, float32(b.Dy())/scale))
	v.photo.Refresh()
	v.center.Refresh()
}
