package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/filesorter/pkg/episode"
)

// parseResult is the outcome of running the heuristic chain on one file.
type parseResult struct {
	File        string   `json:"file"`
	Dir         string   `json:"dir,omitempty"`
	Show        string   `json:"show,omitempty"`
	Season      string   `json:"season,omitempty"`
	Episode     string   `json:"episode,omitempty"`
	Destination string   `json:"destination,omitempty"`
	Evaluated   []string `json:"evaluated"`
	Matched     []string `json:"matched"`
	Error       string   `json:"error,omitempty"`
}

var parseHeaders = []string{"File", "Show", "Season", "Episode", "Destination", "Matched"}

func newParseCmd() *cobra.Command {
	var (
		dir        string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "parse [flags] <filename>...",
		Short: "Show how filenames would be sorted (local, touches nothing)",
		Long: `Run the heuristic chain on each filename and print the recovered
show, season and episode together with the library path it maps to.

The parent directory name is taken from the argument's path unless
--dir is given.

Examples:
  filesorter parse Breaking.Bad.S01E02.720p.mkv
  filesorter parse --dir "The Office Season 3" S03E05.mp4
  filesorter parse --json "Show.Name.Complete/show.name.101.mkv"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]parseResult, 0, len(args))
			for _, arg := range args {
				results = append(results, parseFile(arg, dir))
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				return printParseJSON(out, results)
			}
			if isTerminal(out) {
				fmt.Fprintln(out, renderTable(parseHeaders, parseRows(results)))
				return nil
			}
			printParsePlain(out, results)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Parent directory name to use for every file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func parseFile(arg, dirOverride string) parseResult {
	name := filepath.Base(arg)
	dir := dirOverride
	if dir == "" {
		if parent := filepath.Dir(arg); parent != "." {
			dir = filepath.Base(parent)
		}
	}

	result, dest, err := episode.Resolve(name, dir)
	pr := parseResult{
		File:      name,
		Dir:       dir,
		Show:      result.Identity.Show,
		Season:    result.Identity.Season,
		Episode:   result.Identity.Episode,
		Evaluated: nonNil(result.Evaluated),
		Matched:   nonNil(result.Matched),
	}
	if err != nil {
		pr.Error = err.Error()
		return pr
	}
	pr.Destination = filepath.FromSlash(dest.Path())
	return pr
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func parseRows(results []parseResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		dest := r.Destination
		if r.Error != "" {
			dest = r.Error
		}
		rows = append(rows, []string{
			r.File,
			orDash(r.Show),
			orDash(r.Season),
			orDash(r.Episode),
			dest,
			orDash(strings.Join(r.Matched, ",")),
		})
	}
	return rows
}

func printParsePlain(w io.Writer, results []parseResult) {
	for _, row := range parseRows(results) {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

func printParseJSON(w io.Writer, results []parseResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
