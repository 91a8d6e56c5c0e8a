package minic

import "fmt"

// externs are the library symbols every emitted translation unit
// declares unconditionally, regardless of whether the fixture actually
// calls them — matching the reference driver's fixed extern block.
var externs = []string{"printf", "scanf", "malloc", "free", "getchar"}

// Generate drives the whole compilation: prologue, one pass over the
// translation unit's items, then the .rodata string pool. It returns
// the assembled text and the accumulated diagnostics; callers decide
// exit status from diags.HasErrors().
func Generate(tu *TranslationUnitNode, cfg *Config) (string, *Diagnostics) {
	asm, diags, _ := GenerateState(tu, cfg)
	return asm, diags
}

// GenerateState is Generate plus the final generator State, for
// callers (the -dump-state CLI flag, tests) that want to inspect
// generator internals after a run.
func GenerateState(tu *TranslationUnitNode, cfg *Config) (string, *Diagnostics, *State) {
	s := NewState(cfg)

	s.out.writeil("global main")
	s.out.writeil("section .text")
	for _, e := range externs {
		s.out.writeil(fmt.Sprintf("extern %s", e))
	}

	for _, item := range tu.Items {
		var err error
		switch t := item.(type) {
		case *DeclarationNode:
			err = s.GenDeclaration(t)
		case *FunctionDefinitionNode:
			err = s.genFunctionDefinition(t)
		default:
			panic(fmt.Sprintf("Generate: translation unit item has unexpected kind %T", item))
		}
		if err != nil && s.cfg.GetBool("codegen.stop_on_first_error") {
			break
		}
	}

	s.out.writeil("section .rodata")
	for i, str := range s.strings {
		s.out.writeil(fmt.Sprintf("s%d: db %q, 0", i, str))
	}

	return s.out.String(), s.diags, s
}

func (s *State) genFunctionDefinition(n *FunctionDefinitionNode) error {
	ident := n.Declarator.Ident

	// Locals declared in the body are dropped once the function ends;
	// translation-unit-level declarations stay visible to later items.
	outer := make(SymTab, len(s.vars))
	for k, v := range s.vars {
		outer[k] = v
	}
	defer func() { s.vars = outer }()

	s.out.writeil(fmt.Sprintf("%s:", ident))
	s.out.writeil("push rbp")
	s.out.writeil("mov rbp, rsp")
	if err := s.GenStmtComp(n.CompoundStatement); err != nil {
		if s.cfg.GetBool("codegen.stop_on_first_error") {
			return err
		}
	}
	s.out.writeil("mov rsp, rbp")
	s.out.writeil("pop rbp")
	s.out.writeil("mov rax, 0")
	s.out.writeil("ret")
	s.out.writeil("")
	return nil
}
