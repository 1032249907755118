package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceKicad/pkg/kicad/schematic"
)

var (
	dump    bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sch-info <schematic_file>",
	Short: "Show KiCad schematic information",
	Long: `Display information about a KiCad schematic file (.kicad_sch).

Examples:
  sch-info board.kicad_sch           # Show schematic summary
  sch-info --dump board.kicad_sch    # Dump the full parsed structure`,
	Version: "0.1.0",
	Args:    cobra.ExactArgs(1),
	RunE:    runInfo,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&dump, "dump", false, "dump the full parsed structure")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	sch, err := schematic.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing schematic: %w", err)
	}

	if dump {
		spew.Dump(sch)
		return nil
	}

	showSummary(sch, filename)
	return nil
}

func showSummary(sch *schematic.Schematic, filename string) {
	fmt.Printf("Schematic: %s\n", filename)
	if sch.Version != nil {
		fmt.Printf("Version: %d\n", *sch.Version)
	}
	fmt.Printf("Generator: %s", sch.Generator)
	if sch.GeneratorVersion != "" {
		fmt.Printf(" v%s", sch.GeneratorVersion)
	}
	fmt.Println()
	if sch.UUID != nil {
		fmt.Printf("UUID: %s\n", sch.UUID)
	}
	if sch.Paper != nil {
		fmt.Printf("Paper: %s", sch.Paper.Size)
		if sch.Paper.Portrait {
			fmt.Print(" (portrait)")
		}
		fmt.Println()
	}
	fmt.Println()

	if tb := sch.TitleBlock; tb != nil {
		fmt.Println("Title Block:")
		if tb.Title != "" {
			fmt.Printf("  Title: %s\n", tb.Title)
		}
		if tb.Date != "" {
			fmt.Printf("  Date: %s\n", tb.Date)
		}
		if tb.Revision != "" {
			fmt.Printf("  Revision: %s\n", tb.Revision)
		}
		if tb.Company != "" {
			fmt.Printf("  Company: %s\n", tb.Company)
		}
		fmt.Println()
	}

	fmt.Println("Statistics:")
	fmt.Printf("  Library symbols: %d\n", len(sch.LibSymbols))
	fmt.Printf("  Wires: %d\n", len(sch.Wires))
	fmt.Printf("  Buses: %d\n", len(sch.Buses))
	fmt.Printf("  Bus entries: %d\n", len(sch.BusEntries))
	fmt.Printf("  Junctions: %d\n", len(sch.Junctions))
	fmt.Printf("  Labels: %d\n", len(sch.Labels))
	fmt.Printf("  Global labels: %d\n", len(sch.GlobalLabels))
	fmt.Printf("  No-connects: %d\n", len(sch.NoConnects))
	fmt.Printf("  Polylines: %d\n", len(sch.Polylines))
	fmt.Printf("  Text items: %d\n", len(sch.Texts))
	fmt.Println()

	if len(sch.LibSymbols) > 0 {
		fmt.Println("Library Symbols:")
		names := make([]string, 0, len(sch.LibSymbols))
		for _, sym := range sch.LibSymbols {
			names = append(names, sym.ID)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Printf("  %s\n", n)
		}
		fmt.Println()
	}

	labels := netLabels(sch)
	if len(labels) > 0 {
		fmt.Println("Net Labels:")
		sort.Strings(labels)
		fmt.Printf("  %s\n", strings.Join(labels, ", "))
	}
}

func netLabels(sch *schematic.Schematic) []string {
	seen := make(map[string]bool)
	var names []string
	for _, l := range sch.Labels {
		if !seen[l.Text] {
			seen[l.Text] = true
			names = append(names, l.Text)
		}
	}
	for _, g := range sch.GlobalLabels {
		if !seen[g.Text] {
			seen[g.Text] = true
			names = append(names, g.Text)
		}
	}
	return names
}
