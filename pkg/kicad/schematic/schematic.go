// Package schematic decodes and encodes KiCad schematic (.kicad_sch)
// files into typed records. Parsing is strict: unknown keys, duplicate
// fields, and malformed values fail with a *sexpr.ParseError.
package schematic

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/kicad"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr"
	"github.com/OpenTraceLab/OpenTraceKicad/pkg/sexpr/shape"
)

// Schematic is the root kicad_sch record.
type Schematic struct {
	// Version is the file format version as a YYYYMMDD integer.
	Version *int64

	// Generator names the writing program, eeschema for KiCad itself.
	Generator        string
	GeneratorVersion string

	UUID       *uuid.UUID
	Paper      *kicad.Paper
	TitleBlock *kicad.TitleBlock

	// LibSymbols is the embedded symbol library.
	LibSymbols []kicad.Symbol

	Junctions    []Junction
	NoConnects   []NoConnect
	BusEntries   []BusEntry
	Wires        []Wire
	Buses        []Bus
	Polylines    []GraphicPolyline
	Texts        []GraphicText
	Labels       []Label
	GlobalLabels []GlobalLabel
}

// Parse reads one kicad_sch expression from r.
func Parse(r io.Reader) (*Schematic, error) {
	vs, err := sexpr.Read(r)
	if err != nil {
		return nil, err
	}
	if len(vs) != 1 {
		return nil, fmt.Errorf("expected a single kicad_sch expression, got %d", len(vs))
	}
	return ParseSchematic(vs[0])
}

// ParseString parses a schematic from source text.
func ParseString(s string) (*Schematic, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile parses a schematic file from disk.
func ParseFile(path string) (*Schematic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schematic: %w", err)
	}
	defer f.Close()

	sch, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return sch, nil
}

// ParseSchematic destructures an already-read kicad_sch value.
func ParseSchematic(v sexpr.Value) (*Schematic, error) {
	var s Schematic
	rec := shape.NewRecord("kicad_sch",
		shape.ValPtr("version", &s.Version, shape.CoerceInt),
		shape.Val("generator", &s.Generator, shape.CoerceStr),
		shape.Val("generator_version", &s.GeneratorVersion, shape.CoerceStr),
		shape.KeyPtr("uuid", &s.UUID, kicad.ParseUUID),
		shape.KeyPtr("paper", &s.Paper, kicad.ParsePaper),
		shape.KeyPtr("title_block", &s.TitleBlock, kicad.ParseTitleBlock),
		shape.Key("lib_symbols", &s.LibSymbols, parseLibSymbols),
		shape.Rep("junction", &s.Junctions, ParseJunction),
		shape.Rep("no_connect", &s.NoConnects, ParseNoConnect),
		shape.Rep("bus_entry", &s.BusEntries, ParseBusEntry),
		shape.Rep("wire", &s.Wires, ParseWire),
		shape.Rep("bus", &s.Buses, ParseBus),
		shape.Rep("polyline", &s.Polylines, ParseGraphicPolyline),
		shape.Rep("text", &s.Texts, ParseGraphicText),
		shape.Rep("label", &s.Labels, ParseLabel),
		shape.Rep("global_label", &s.GlobalLabels, ParseGlobalLabel),
	)
	if err := rec.Match(v); err != nil {
		return nil, err
	}
	return &s, nil
}

// parseLibSymbols destructures the (lib_symbols (symbol ...) ...) element.
func parseLibSymbols(v sexpr.Value) ([]kicad.Symbol, error) {
	c, err := sexpr.RequireHead(v, "lib_symbols")
	if err != nil {
		return nil, err
	}
	var symbols []kicad.Symbol
	for !c.AtEnd() {
		el, err := c.Next()
		if err != nil {
			return nil, err
		}
		sym, err := kicad.ParseSymbol(el)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
	}
	return symbols, nil
}

// Encode writes the schematic in KiCad's indented layout.
func (s *Schematic) Encode(w io.Writer) error {
	return sexpr.WriteIndent(w, s.Sexpr())
}

// EncodeFile writes the schematic to a file on disk.
func (s *Schematic) EncodeFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating schematic: %w", err)
	}
	defer f.Close()

	if err := s.Encode(f); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// Sexpr encodes the schematic in schema field order.
func (s *Schematic) Sexpr() sexpr.Value {
	items := []sexpr.Value{sexpr.Symbol("kicad_sch")}
	if s.Version != nil {
		items = append(items, sexpr.List(sexpr.Symbol("version"), sexpr.Int(*s.Version)))
	}
	if s.Generator != "" {
		items = append(items, sexpr.List(sexpr.Symbol("generator"), sexpr.String(s.Generator)))
	}
	if s.GeneratorVersion != "" {
		items = append(items, sexpr.List(sexpr.Symbol("generator_version"), sexpr.String(s.GeneratorVersion)))
	}
	if s.UUID != nil {
		items = append(items, kicad.UUIDSexpr(*s.UUID))
	}
	if s.Paper != nil {
		items = append(items, s.Paper.Sexpr())
	}
	if s.TitleBlock != nil {
		items = append(items, s.TitleBlock.Sexpr())
	}
	if len(s.LibSymbols) > 0 {
		libs := []sexpr.Value{sexpr.Symbol("lib_symbols")}
		for _, sym := range s.LibSymbols {
			libs = append(libs, sym.Sexpr())
		}
		items = append(items, sexpr.List(libs...))
	}
	for _, j := range s.Junctions {
		items = append(items, j.Sexpr())
	}
	for _, nc := range s.NoConnects {
		items = append(items, nc.Sexpr())
	}
	for _, be := range s.BusEntries {
		items = append(items, be.Sexpr())
	}
	for _, w := range s.Wires {
		items = append(items, w.Sexpr())
	}
	for _, b := range s.Buses {
		items = append(items, b.Sexpr())
	}
	for _, p := range s.Polylines {
		items = append(items, p.Sexpr())
	}
	for _, t := range s.Texts {
		items = append(items, t.Sexpr())
	}
	for _, l := range s.Labels {
		items = append(items, l.Sexpr())
	}
	for _, g := range s.GlobalLabels {
		items = append(items, g.Sexpr())
	}
	return sexpr.List(items...)
}
