package episode

import (
	"fmt"
	"path"
	"strconv"
	"strings"
)

// Destination is the canonical library location for an episode, relative to
// the TV root.
type Destination struct {
	ShowDir   string // "Show Name"
	SeasonDir string // "Season 1"
	Filename  string // "Show.Name.s01e03.mkv"
}

// Dir returns the show/season subdirectory.
func (d Destination) Dir() string {
	return path.Join(d.ShowDir, d.SeasonDir)
}

// Path returns the subdirectory joined with the filename.
func (d Destination) Path() string {
	return path.Join(d.ShowDir, d.SeasonDir, d.Filename)
}

// Build derives the destination for a complete identity. The extension is
// taken verbatim from originalFilename.
func Build(originalFilename string, id Identity) (Destination, error) {
	if !id.Complete() {
		return Destination{}, fmt.Errorf("%w: %+v", ErrIncomplete, id)
	}
	season, err := id.SeasonNumber()
	if err != nil {
		return Destination{}, err
	}
	showDir := NormalizeTitle(id.Show, " ")
	if showDir == "" {
		return Destination{}, fmt.Errorf("%w: empty show name %q", ErrIncomplete, id.Show)
	}

	name := fmt.Sprintf("%s.s%se%s.%s",
		NormalizeTitle(id.Show, "."),
		padSeason(id.Season),
		id.Episode,
		Extension(originalFilename),
	)
	return Destination{
		ShowDir:   showDir,
		SeasonDir: "Season " + strconv.Itoa(season),
		Filename:  name,
	}, nil
}

// padSeason prefixes a single-character season with 0. Longer values are
// returned unchanged.
func padSeason(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// Extension returns the text after the final dot, or "" if there is none.
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return filename[i+1:]
}

// candidateExts are the container formats picked up from the source tree.
var candidateExts = map[string]bool{
	"mkv": true,
	"mp4": true,
}

// IsCandidate reports whether filename has a video extension worth sorting.
func IsCandidate(filename string) bool {
	return candidateExts[strings.ToLower(Extension(filename))]
}

// Resolve identifies filename within dir and builds its destination.
// It returns ErrUnrecognized when the chain cannot complete the identity.
func Resolve(filename, dir string) (Result, Destination, error) {
	r := Identify(filename, dir)
	if !r.Complete() {
		return r, Destination{}, ErrUnrecognized
	}
	dest, err := Build(filename, r.Identity)
	if err != nil {
		return r, Destination{}, err
	}
	return r, dest, nil
}
