// Package report renders a search.Summary for humans (text) or machines
// (json, yaml).
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hamroute/search"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat indicates a format outside text, json and yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Route is one extremum in serialisable form.
type Route struct {
	Cost     uint64   `json:"cost" yaml:"cost"`
	Path     []string `json:"path" yaml:"path"`
	Expanded int      `json:"expanded" yaml:"expanded"`
}

// Report is the serialisable form of a search.Summary.
type Report struct {
	Locations []string `json:"locations" yaml:"locations"`
	Shortest  Route    `json:"shortest" yaml:"shortest"`
	Longest   Route    `json:"longest" yaml:"longest"`
}

// FromSummary converts s. Nil slices become empty ones so encoders emit
// [] rather than null.
func FromSummary(s search.Summary) Report {
	return Report{
		Locations: nonNil(s.Locations),
		Shortest:  Route{Cost: uint64(s.Min.Cost), Path: nonNil(s.MinRoute), Expanded: s.Min.Expanded},
		Longest:   Route{Cost: uint64(s.Max.Cost), Path: nonNil(s.MaxRoute), Expanded: s.Max.Expanded},
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}

	return in
}

// Render writes s to w in the given format.
func Render(w io.Writer, s search.Summary, format string) error {
	r := FromSummary(s)
	switch format {
	case FormatText:
		return renderText(w, r)
	case FormatJSON:
		return renderJSON(w, r)
	case FormatYAML:
		return renderYAML(w, r)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

func renderText(w io.Writer, r Report) error {
	_, err := fmt.Fprintf(w, "locations: %d\nshortest: %d %s\nlongest: %d %s\n",
		len(r.Locations),
		r.Shortest.Cost, strings.Join(r.Shortest.Path, " -> "),
		r.Longest.Cost, strings.Join(r.Longest.Path, " -> "),
	)

	return err
}

func renderJSON(w io.Writer, r Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("report: json: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)

	return err
}

func renderYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}

	return enc.Close()
}
