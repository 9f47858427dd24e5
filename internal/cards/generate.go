package cards

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"path/filepath"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"

	imagepkg "github.com/youruser/bingoapp/internal/image"
	"github.com/youruser/bingoapp/internal/util"
)

var ErrNoPhotos = errors.New("no images found")

type Options struct {
	// Root is the photo folder; cards go to Root/bingo_cards/<title>.
	Root        string
	Title       string
	Count       int
	Multicolour bool
	// QRText, when set, is encoded as a QR code in each banner.
	QRText string
	Layout imagepkg.Layout
	Rand   *rand.Rand
	// OnCard is called after each card is written.
	OnCard func(card Card, total int)
}

// Report summarises a Generate run.
type Report struct {
	OutputDir    string
	Paths        []string
	Placeholders int
	Repeated     bool
}

// OutputDir is where cards for title are written under root.
func OutputDir(root, title string) string {
	return filepath.Join(root, OutputDirName, SanitizeTitle(title))
}

// CardFileName is bingo_card_NN.png for the 1-based card number.
func CardFileName(n int) string {
	return fmt.Sprintf("bingo_card_%02d.png", n)
}

// Generate writes opt.Count cards drawn from pool. The context is checked
// between cards.
func Generate(ctx context.Context, pool []string, opt Options) (*Report, error) {
	if len(pool) == 0 {
		return nil, ErrNoPhotos
	}
	if opt.Count < 1 {
		return nil, fmt.Errorf("card count must be at least 1, got %d", opt.Count)
	}
	if opt.Layout.Grid == 0 {
		opt.Layout = imagepkg.DefaultLayout
	}
	if opt.Rand == nil {
		opt.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var qr image.Image
	if opt.QRText != "" {
		var err error
		qr, err = imagepkg.GenerateQRImage(opt.QRText, opt.Layout.QRSize)
		if err != nil {
			return nil, fmt.Errorf("encoding QR text: %w", err)
		}
	}

	rep := &Report{OutputDir: OutputDir(opt.Root, opt.Title)}
	if err := util.EnsureDir(rep.OutputDir); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	for n := 1; n <= opt.Count; n++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		photos, repeated := Select(pool, opt.Layout.Cells(), opt.Rand)
		card := Card{
			Number:     n,
			Title:      opt.Title,
			Background: PickBackground(opt.Multicolour, opt.Rand),
			Photos:     photos,
			Path:       filepath.Join(rep.OutputDir, CardFileName(n)),
		}
		if repeated {
			rep.Repeated = true
			log.WithFields(log.Fields{"card": n, "photos": len(pool), "cells": opt.Layout.Cells()}).
				Warn("not enough images for a full card, some will repeat")
		}

		placeholders, err := render(card, opt.Layout, qr)
		rep.Placeholders += placeholders
		if err != nil {
			return rep, fmt.Errorf("card %d: %w", n, err)
		}
		rep.Paths = append(rep.Paths, card.Path)
		log.WithField("path", card.Path).Debug("saved card")
		if opt.OnCard != nil {
			opt.OnCard(card, opt.Count)
		}
	}
	return rep, nil
}

func render(card Card, l imagepkg.Layout, qr image.Image) (int, error) {
	placeholders := 0
	thumbs := make([]image.Image, len(card.Photos))
	for i, p := range card.Photos {
		th, ok := imagepkg.ThumbnailFile(p, l.CellSize)
		if !ok {
			placeholders++
		}
		thumbs[i] = th
	}
	img, err := imagepkg.ComposeCard(imagepkg.CardSpec{
		Layout:     l,
		Title:      card.Title,
		Background: card.Background,
		Thumbs:     thumbs,
		QR:         qr,
	})
	if err != nil {
		return placeholders, err
	}
	if err := imaging.Save(img, card.Path); err != nil {
		return placeholders, fmt.Errorf("saving %s: %w", card.Path, err)
	}
	return placeholders, nil
}
