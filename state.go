package minic

import "fmt"

// builtinTypes holds the synthetic declaration-specifier/declarator
// pairs the generator needs for values it conjures itself — integer
// literals, string literals, the result of a comparison, sizeof's
// result type — that were never spelled out by an actual declaration
// in the input AST.
type builtinTypes struct {
	specInt, specChar   *DeclSpecNode
	declEmpty, declPtr  *DeclaratorNode

	tInt, tChar, tCharPtr, tSizeT Type
}

func newBuiltinTypes() builtinTypes {
	specInt := &DeclSpecNode{}
	specInt.BuiltinTypes[BTInt]++
	specChar := &DeclSpecNode{}
	specChar.BuiltinTypes[BTChar]++

	declEmpty := &DeclaratorNode{}
	declPtr := &DeclaratorNode{Ops: []Node{&PointerDeclaratorNode{}}}

	b := builtinTypes{
		specInt:   specInt,
		specChar:  specChar,
		declEmpty: declEmpty,
		declPtr:   declPtr,
	}
	b.tInt = Type{Spec: specInt, Decl: declEmpty}
	b.tChar = Type{Spec: specChar, Decl: declEmpty}
	b.tCharPtr = Type{Spec: specChar, Decl: declPtr}
	b.tSizeT = b.tInt // TODO: a real size_t once unsigned types are tracked
	return b
}

// State is the single mutable bundle threaded through code
// generation: the symbol table, the descending stack pointer, the
// assembly output buffer, the string-literal pool, the jump-label
// counter, the builtin type cache, the active Config, and the
// diagnostics sink accumulating anything the generator couldn't emit.
type State struct {
	vars    SymTab
	sp      int
	out     *outputWriter
	strings []string
	label   int
	builtin builtinTypes

	cfg   *Config
	diags *Diagnostics
}

// NewState creates a ready-to-use generation state. cfg may be nil, in
// which case NewConfig()'s defaults are used.
func NewState(cfg *Config) *State {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &State{
		vars:    newSymTab(),
		sp:      0,
		out:     newOutputWriter("\t"),
		strings: nil,
		label:   0,
		builtin: newBuiltinTypes(),
		cfg:     cfg,
		diags:   NewDiagnostics(),
	}
}

// getLabel allocates and returns the next unique jump-label number.
func (s *State) getLabel() int {
	l := s.label
	s.label++
	return l
}

// putLabel emits the definition of label l.
func (s *State) putLabel(l int) {
	s.out.writeil(fmt.Sprintf("label_%d:", l))
}

// internString interns a string literal into the .rodata pool and
// returns its index, for use in a `s<i>` symbol reference.
func (s *State) internString(v string) int {
	idx := len(s.strings)
	s.strings = append(s.strings, v)
	return idx
}
