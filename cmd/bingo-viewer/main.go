package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/youruser/bingoapp/internal/clibase"
	"github.com/youruser/bingoapp/internal/photos"
	"github.com/youruser/bingoapp/internal/util"
	"github.com/youruser/bingoapp/internal/viewer"
)

const (
	appName        = "bingo-viewer"
	appDescription = "Bingo Photo Viewer - display photos in random order"
)

func main() {
	rootCmd := clibase.New(appName, appDescription)
	folder := rootCmd.Flags().StringP("folder", "f", "bingo", "source folder name within ~/Documents/")

	rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
		dir, err := util.PhotoDir(*folder)
		if err != nil {
			return err
		}
		paths, err := photos.LoadPhotosFromDir(dir, photos.LoadOptions{CreateMissing: true})
		if err != nil {
			// still open the window so the user sees the empty-folder dialog
			log.WithError(err).Error("unable to read photo directory")
		}
		log.WithFields(log.Fields{"dir": dir, "count": len(paths)}).Info("found images")
		viewer.Run(dir, paths)
		return nil
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
