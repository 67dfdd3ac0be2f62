package episode

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Heuristic extracts part of an identity from a prepared filename and the
// name of its enclosing directory. Apply returns the updated identity.
type Heuristic struct {
	Name  string
	Apply func(filename, dir string, id Identity) Identity
}

var (
	standardRe    = regexp.MustCompile(`(.+)\.s(\d+)(?:e|ep)(\d+)`)
	noSERe        = regexp.MustCompile(`(.+)\.([1-9])([0-9][0-9])[^\d]`)
	seasonDirRe   = regexp.MustCompile(`(.+)\.season\.(\d+)`)
	completeDirRe = regexp.MustCompile(`(.+)\.complete`)
	justSERe      = regexp.MustCompile(`s(\d+)(?:e|ep)(\d+)`)
	leadingDotRe  = regexp.MustCompile(`^(\d+)\.(\d+)`)
)

// chain is evaluated in order; earlier heuristics win because later ones
// only fill fields that are still empty.
var chain = []Heuristic{
	{Name: "standard", Apply: standard},
	{Name: "noSE", Apply: noSE},
	{Name: "seasonDir", Apply: seasonDir},
	{Name: "completeDir", Apply: completeDir},
	{Name: "justSE", Apply: justSE},
	{Name: "leadingDot", Apply: leadingDot},
}

// Heuristics returns the extractors in evaluation order.
func Heuristics() []Heuristic {
	out := make([]Heuristic, len(chain))
	copy(out, chain)
	return out
}

// standard matches "show.name.s01e02" and "show.name.s1ep2".
func standard(filename, _ string, id Identity) Identity {
	m := standardRe.FindStringSubmatch(filename)
	if m == nil {
		return id
	}
	return id.withShow(m[1]).withSeason(m[2]).withEpisode(m[3])
}

// noSE matches an unmarked season+episode code such as "show.name.102.".
func noSE(filename, _ string, id Identity) Identity {
	m := noSERe.FindStringSubmatch(filename)
	if m == nil {
		return id
	}
	return id.withShow(m[1]).withSeason(m[2]).withEpisode(m[3])
}

// seasonDir matches directories laid out as "show.name.season.3".
// Unlike the other heuristics it replaces an existing show.
func seasonDir(_, dir string, id Identity) Identity {
	m := seasonDirRe.FindStringSubmatch(dir)
	if m == nil {
		return id
	}
	id.Show = m[1]
	return id.withSeason(m[2])
}

// completeDir matches "show.name.complete" directories.
func completeDir(_, dir string, id Identity) Identity {
	if id.Show != "" {
		return id
	}
	m := completeDirRe.FindStringSubmatch(dir)
	if m == nil {
		return id
	}
	return id.withShow(m[1])
}

// justSE finds a bare "s01e02" anywhere in the filename.
func justSE(filename, _ string, id Identity) Identity {
	m := justSERe.FindStringSubmatch(filename)
	if m == nil {
		return id
	}
	return id.withSeason(m[1]).withEpisode(m[2])
}

// leadingDot matches filenames that start with "1.02".
func leadingDot(filename, _ string, id Identity) Identity {
	m := leadingDotRe.FindStringSubmatch(filename)
	if m == nil {
		return id
	}
	return id.withSeason(m[1]).withEpisode(m[2])
}

// PrepareName lowercases s and turns spaces into dots. Input is normalized
// to NFC first so decomposed names from macOS volumes match like composed ones.
func PrepareName(s string) string {
	s = norm.NFC.String(s)
	return strings.ReplaceAll(strings.ToLower(s), " ", ".")
}

// Result is the outcome of running the heuristic chain.
type Result struct {
	Identity Identity
	// Evaluated lists the heuristics that ran, in order.
	Evaluated []string
	// Matched lists the heuristics that changed the identity.
	Matched []string
}

// Complete reports whether the chain produced a complete identity.
func (r Result) Complete() bool {
	return r.Identity.Complete()
}

// Identify runs the heuristic chain against a raw filename and the base
// name of its directory, stopping at the first complete identity.
func Identify(filename, dir string) Result {
	fn := PrepareName(filename)
	d := PrepareName(dir)

	var r Result
	for _, h := range chain {
		next := h.Apply(fn, d, r.Identity)
		r.Evaluated = append(r.Evaluated, h.Name)
		if next != r.Identity {
			r.Matched = append(r.Matched, h.Name)
		}
		r.Identity = next
		if r.Identity.Complete() {
			break
		}
	}
	return r
}
