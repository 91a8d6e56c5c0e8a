package minic

import "github.com/davecgh/go-spew/spew"

// DumpAST renders a full structural dump of an AST for -dump-ast,
// using spew rather than the diagnostic-oriented PrettyPrint/DumpTree
// pair so every field (including zero values and Range spans) is
// visible to a developer chasing a codegen bug.
func DumpAST(n Node) string {
	return spew.Sdump(n)
}

// DumpState renders the generator's full internal state for
// -dump-state: the symbol table, stack pointer, string pool, label
// counter and config are dumped verbatim. The output stream buffer
// (already the thing being produced), the builtin type cache and the
// diagnostics sink are not included.
func DumpState(s *State) string {
	view := struct {
		Vars    SymTab
		SP      int
		Strings []string
		Label   int
		Config  *Config
	}{
		Vars:    s.vars,
		SP:      s.sp,
		Strings: s.strings,
		Label:   s.label,
		Config:  s.cfg,
	}
	return spew.Sdump(view)
}
