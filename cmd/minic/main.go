// Command minic is a thin CLI front end around the code generator: it
// selects a built-in fixture translation unit (there is no parser; see
// astbuild.go in the core package), drives codegen, and writes the
// resulting assembly plus any diagnostics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/kuruczgy-subset/minic"
)

type args struct {
	fixture  string
	config   string
	out      string
	dumpAST  bool
	dumpState bool
	noColor  bool
}

func readArgs() args {
	var a args
	flag.StringVar(&a.fixture, "fixture", "simple-assign", "built-in fixture translation unit to compile")
	flag.StringVar(&a.config, "config", "", "optional YAML config file merged over the defaults")
	flag.StringVar(&a.out, "out", "", "output path for emitted assembly (default stdout)")
	flag.BoolVar(&a.dumpAST, "dump-ast", false, "dump the fixture AST to stderr instead of compiling")
	flag.BoolVar(&a.dumpState, "dump-state", false, "dump the final generator state to stderr")
	flag.BoolVar(&a.noColor, "no-color", false, "disable ANSI-colored diagnostics")
	flag.Parse()
	return a
}

func fixtureNames() []string {
	names := make([]string, 0, len(minic.Fixtures))
	for k := range minic.Fixtures {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func main() {
	a := readArgs()

	tu, ok := minic.Fixtures[a.fixture]
	if !ok {
		log.Fatalf("unknown fixture %q (available: %s)", a.fixture, strings.Join(fixtureNames(), ", "))
	}

	if a.dumpAST {
		fmt.Fprintln(os.Stderr, minic.DumpAST(tu))
		return
	}

	cfg := minic.NewConfig()
	if a.config != "" {
		if err := cfg.LoadYAML(a.config); err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}
	if a.noColor {
		cfg.SetBool("diagnostics.color", false)
	}

	asm, diags, state := minic.GenerateState(tu, cfg)

	out := os.Stdout
	if a.out != "" {
		f, err := os.Create(a.out)
		if err != nil {
			log.Fatalf("opening output: %v", err)
		}
		defer f.Close()
		out = f
	}
	fmt.Fprint(out, asm)

	if rendered := diags.Render(cfg.GetBool("diagnostics.color")); rendered != "" {
		fmt.Fprint(os.Stderr, rendered)
	}
	if a.dumpState {
		fmt.Fprintln(os.Stderr, minic.DumpState(state))
	}

	if diags.HasErrors() {
		os.Exit(1)
	}
}
