package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/goforj/godump"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/youruser/bingoapp/internal/cards"
	"github.com/youruser/bingoapp/internal/clibase"
	imagepkg "github.com/youruser/bingoapp/internal/image"
	"github.com/youruser/bingoapp/internal/photos"
	"github.com/youruser/bingoapp/internal/util"
)

const (
	appName        = "bingo-cards"
	appDescription = "Generate random bingo cards from images"
	appExamples    = `  # Generate 10 cards with default title "J&J's BINGO"
  bingo-cards

  # Generate cards with custom title
  bingo-cards --title "R&L"

  # Generate 20 pastel cards with custom title
  bingo-cards --title "Sarah & Mike" --count 20 --multicolour`
)

type flags struct {
	Folder      string
	Title       string
	Count       int
	Multicolour bool
	QR          string
	Seed        uint64
}

func main() {
	rootCmd := clibase.New(appName, appDescription)
	rootCmd.Example = appExamples

	var f flags
	fs := rootCmd.Flags()
	fs.StringVarP(&f.Folder, "folder", "f", "bingo", "source folder name within ~/Documents/")
	fs.StringVarP(&f.Title, "title", "t", cards.DefaultTitle, "title to display on the bingo cards")
	fs.IntVarP(&f.Count, "count", "c", cards.DefaultCount, "number of bingo cards to generate")
	fs.BoolVarP(&f.Multicolour, "multicolour", "m", false, "use a random pastel background per card")
	fs.StringVar(&f.QR, "qr", "", "text to encode as a QR code in each card's banner")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed for reproducible cards (0 picks one)")

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if clibase.Debug(cmd) {
			godump.Dump(f)
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return run(ctx, os.Stdout, f)
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.WithFields(
			log.Fields{
				"app.name": appName,
				"error":    err.Error(),
			},
		).Fatal("application exited with an error")
	}
}

func run(ctx context.Context, out io.Writer, f flags) error {
	root, err := util.PhotoDir(f.Folder)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Loading images from %s...\n", root)
	pool, err := photos.LoadPhotosFromDir(root, photos.LoadOptions{SkipDirs: []string{cards.OutputDirName}})
	if err != nil {
		return err
	}
	if len(pool) == 0 {
		return cards.ErrNoPhotos
	}
	fmt.Fprintf(out, "Found %d images\n", len(pool))

	cells := imagepkg.DefaultLayout.Cells()
	if len(pool) < cells {
		fmt.Fprintf(out, "Warning: You need at least %d images for a full bingo card.\n", cells)
		fmt.Fprintln(out, "Some images will be repeated.")
	}

	seed := f.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.WithField("seed", seed).Debug("random source")

	outDir := cards.OutputDir(root, f.Title)
	fmt.Fprintf(out, "Creating %d bingo cards with title '%s' in %s...\n", f.Count, f.Title, outDir)

	bar := progressbar.NewOptions(f.Count,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("generating cards"),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(out) }),
	)
	rep, err := cards.Generate(ctx, pool, cards.Options{
		Root:        root,
		Title:       f.Title,
		Count:       f.Count,
		Multicolour: f.Multicolour,
		QRText:      f.QR,
		Rand:        rand.New(rand.NewPCG(seed, seed>>1|1)),
		OnCard: func(c cards.Card, total int) {
			_ = bar.Clear()
			fmt.Fprintf(out, "Saved: %s\n", c.Path)
			bar.Describe(fmt.Sprintf("card %d/%d", c.Number, total))
			_ = bar.Add(1)
		},
	})
	if rep != nil && rep.Placeholders > 0 {
		fmt.Fprintf(out, "Warning: %d cells used a placeholder because an image could not be read.\n", rep.Placeholders)
	}
	if err != nil {
		if rep != nil {
			verb := "Stopped"
			if errors.Is(err, context.Canceled) {
				verb = "Interrupted"
			}
			fmt.Fprintf(out, "\n%s after %d cards in %s\n", verb, len(rep.Paths), rep.OutputDir)
		}
		return err
	}

	fmt.Fprintf(out, "\n✅ Successfully generated %d bingo cards!\n", len(rep.Paths))
	fmt.Fprintf(out, "📁 Cards saved in: %s\n", rep.OutputDir)
	return nil
}
