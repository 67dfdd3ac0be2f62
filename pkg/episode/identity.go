// Package episode infers show, season and episode from media filenames and
// builds the canonical library name for them.
package episode

import (
	"fmt"
	"strconv"
)

// Identity is the show/season/episode triple captured from a filename.
// Season and Episode hold the digits exactly as captured ("01", "3").
type Identity struct {
	Show    string
	Season  string
	Episode string
}

// Complete reports whether all three fields are populated.
func (id Identity) Complete() bool {
	return id.Show != "" && id.Season != "" && id.Episode != ""
}

// SeasonNumber parses the captured season text.
func (id Identity) SeasonNumber() (int, error) {
	n, err := strconv.Atoi(id.Season)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeason, id.Season)
	}
	return n, nil
}

func (id Identity) withShow(show string) Identity {
	if id.Show == "" {
		id.Show = show
	}
	return id
}

func (id Identity) withSeason(season string) Identity {
	if id.Season == "" {
		id.Season = season
	}
	return id
}

func (id Identity) withEpisode(episode string) Identity {
	if id.Episode == "" {
		id.Episode = episode
	}
	return id
}
