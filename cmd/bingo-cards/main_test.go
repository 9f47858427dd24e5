package main

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/bingoapp/internal/cards"
	"github.com/youruser/bingoapp/internal/util"
)

func photoRoot(t *testing.T, n int) string {
	t.Helper()
	docs := t.TempDir()
	t.Setenv(util.DocumentsEnv, docs)
	root := filepath.Join(docs, "bingo")
	require.NoError(t, os.MkdirAll(root, 0o755))
	for i := 0; i < n; i++ {
		img := imaging.New(40, 30, color.NRGBA{R: uint8(i * 9), G: 90, B: 160, A: 255})
		require.NoError(t, imaging.Save(img, filepath.Join(root, fmt.Sprintf("p%02d.png", i))))
	}
	return root
}

func TestRunReportsEachCard(t *testing.T) {
	root := photoRoot(t, 30)

	var out bytes.Buffer
	err := run(context.Background(), &out, flags{Folder: "bingo", Title: "Party", Count: 2, Seed: 3})
	require.NoError(t, err)

	dir := cards.OutputDir(root, "Party")
	assert.Contains(t, out.String(), "Found 30 images")
	assert.Contains(t, out.String(), "Saved: "+filepath.Join(dir, "bingo_card_01.png"))
	assert.Contains(t, out.String(), "Saved: "+filepath.Join(dir, "bingo_card_02.png"))
	assert.Contains(t, out.String(), "Successfully generated 2 bingo cards")
}

func TestRunReportsCardsWrittenBeforeFailure(t *testing.T) {
	root := photoRoot(t, 30)
	dir := cards.OutputDir(root, "Party")
	// a directory in the way makes saving the second card fail
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bingo_card_02.png"), 0o755))

	var out bytes.Buffer
	err := run(context.Background(), &out, flags{Folder: "bingo", Title: "Party", Count: 3, Seed: 3})
	require.Error(t, err)

	assert.Contains(t, out.String(), "Saved: "+filepath.Join(dir, "bingo_card_01.png"))
	assert.NotContains(t, out.String(), "bingo_card_03.png")
	assert.Contains(t, out.String(), "Stopped after 1 cards")
	assert.NotContains(t, out.String(), "Successfully")
}

func TestRunMissingFolder(t *testing.T) {
	t.Setenv(util.DocumentsEnv, t.TempDir())

	var out bytes.Buffer
	err := run(context.Background(), &out, flags{Folder: "absent", Title: "x", Count: 1})
	require.Error(t, err)
}
