// Package slideshow holds the navigation state of the photo viewer.
package slideshow

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const appTitle = "Bingo Photo Viewer"

var ErrEmpty = errors.New("no images to show")

// Show is a shuffled sequence of photo paths and a cursor into it.
// The cursor never leaves [0, Len()-1].
type Show struct {
	paths []string
	index int
	atEnd bool
}

// New shuffles a copy of paths with rng. A nil rng uses the global source.
func New(paths []string, rng *rand.Rand) (*Show, error) {
	if len(paths) == 0 {
		return nil, ErrEmpty
	}
	p := make([]string, len(paths))
	copy(p, paths)
	swap := func(i, j int) { p[i], p[j] = p[j], p[i] }
	if rng != nil {
		rng.Shuffle(len(p), swap)
	} else {
		rand.Shuffle(len(p), swap)
	}
	return &Show{paths: p}, nil
}

func (s *Show) Len() int { return len(s.paths) }

// Current returns the zero-based index and its path.
func (s *Show) Current() (int, string) {
	return s.index, s.paths[s.index]
}

// Position is the 1-based index shown on screen.
func (s *Show) Position() int { return s.index + 1 }

// AtEnd reports whether Next was requested on the last photo.
func (s *Show) AtEnd() bool { return s.atEnd }

// Next advances the cursor. At the last photo it stays put, marks the
// show as ended and returns false.
func (s *Show) Next() bool {
	if s.index < len(s.paths)-1 {
		s.index++
		s.atEnd = false
		return true
	}
	s.atEnd = true
	return false
}

// Prev moves the cursor back, returning false at the first photo.
func (s *Show) Prev() bool {
	if s.index > 0 {
		s.index--
		s.atEnd = false
		return true
	}
	return false
}

// Title is the window title for the current state.
func (s *Show) Title() string {
	if s.atEnd {
		return fmt.Sprintf("%s - End of Slideshow (%d/%d)", appTitle, len(s.paths), len(s.paths))
	}
	return fmt.Sprintf("%s - %d/%d", appTitle, s.Position(), len(s.paths))
}
