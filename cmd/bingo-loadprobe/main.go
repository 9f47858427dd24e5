package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/youruser/bingoapp/internal/clibase"
	imagepkg "github.com/youruser/bingoapp/internal/image"
)

const (
	appName        = "bingo-loadprobe"
	appDescription = "Measure memory and time of the viewer's load-and-fit path on a large image"
)

func heapMB() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapInuse) / 1024 / 1024
}

func main() {
	rootCmd := clibase.New(appName, appDescription)
	fs := rootCmd.Flags()
	width := fs.Int("width", 8000, "synthetic image width")
	height := fs.Int("height", 6000, "synthetic image height")
	screenW := fs.Int("screen-width", 1920, "screen width to fit into")
	screenH := fs.Int("screen-height", 1080, "screen height to fit into")

	rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
		return probe(*width, *height, *screenW, *screenH)
	}

	if err := rootCmd.Execute(); err != nil {
		log.WithFields(
			log.Fields{
				"app.name": appName,
				"error":    err.Error(),
			},
		).Fatal("application exited with an error")
	}
}

func probe(w, h, screenW, screenH int) error {
	dir, err := os.MkdirTemp("", "bingo-loadprobe")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "test_large.png")

	fmt.Printf("Creating %s with size %dx%d...\n", path, w, h)
	if err := imaging.Save(imaging.New(w, h, color.NRGBA{R: 0xff, A: 0xff}), path); err != nil {
		return fmt.Errorf("writing synthetic image: %w", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	fmt.Printf("Created. File size: %.2f MB\n", float64(fi.Size())/1024/1024)

	runtime.GC()
	fmt.Printf("Initial heap: %.2f MB\n", heapMB())
	start := time.Now()

	img, err := imagepkg.OpenImage(path)
	if err != nil {
		return err
	}
	fmt.Printf("After open heap: %.2f MB\n", heapMB())

	fmt.Printf("Fitting to %dx%d...\n", screenW, screenH)
	fitted := imagepkg.FitToScreen(img, screenW, screenH)
	fmt.Printf("After fit heap: %.2f MB (result %dx%d)\n", heapMB(), fitted.Bounds().Dx(), fitted.Bounds().Dy())
	fmt.Printf("Time taken: %.2fs\n", time.Since(start).Seconds())
	return nil
}
