package minic

import "fmt"

// GenStmt lowers a single statement node. Statement kinds outside the
// supported subset (return, break, continue, for, do-while, switch,
// goto, labeled) report a diagnostic rather than silently no-op'ing.
func (s *State) GenStmt(n Node) error {
	switch t := n.(type) {
	case *StmtExprNode:
		if t.Expr == nil {
			return nil
		}
		_, err := s.GenExpr(t.Expr)
		return err

	case *StmtCompNode:
		return s.GenStmtComp(t)

	case *StmtWhileNode:
		return s.genWhile(t)

	case *StmtIfNode:
		return s.genIf(t)

	case *StmtLabeledNode, *StmtLabeledCaseNode, *StmtLabeledDefaultNode,
		*StmtDoWhileNode, *StmtForNode, *StmtSwitchNode, *StmtGotoNode,
		*StmtContinueNode, *StmtBreakNode, *StmtReturnNode:
		return s.diagf(n.Range(), "unsupported statement form: %s", n)

	default:
		panic(fmt.Sprintf("GenStmt: unhandled node type %T", n))
	}
}

// GenStmtComp lowers a compound statement, dispatching each child to
// the declaration or statement handler. No nested scope is opened —
// locals declared inside a compound remain visible (and keep their
// stack slot) for the rest of the enclosing function.
func (s *State) GenStmtComp(n *StmtCompNode) error {
	var firstErr error
	for _, item := range n.Items {
		var err error
		if decl, ok := item.(*DeclarationNode); ok {
			err = s.GenDeclaration(decl)
		} else {
			err = s.GenStmt(item)
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if s.cfg.GetBool("codegen.stop_on_first_error") {
				return firstErr
			}
		}
	}
	return firstErr
}

// GenDeclaration lowers one declaration: each init-declarator either
// records an `extern` symbol (location sentinel 1, no storage) or
// bumps the stack by a fixed 8 bytes regardless of the declared
// type's actual size, then evaluates and stores the initializer if
// present.
func (s *State) GenDeclaration(n *DeclarationNode) error {
	var firstErr error
	for _, id := range n.InitDeclarators {
		if err := s.genInitDeclarator(n.Specifiers, id); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if s.cfg.GetBool("codegen.stop_on_first_error") {
				return firstErr
			}
		}
	}
	return firstErr
}

func (s *State) genInitDeclarator(spec *DeclSpecNode, id *InitDeclaratorNode) error {
	d := id.Declarator
	if !d.HasIdent {
		return s.diagf(d.Range(), "anonymous declarators are unsupported")
	}
	ident := d.Ident
	isExtern := spec.StorageClass[SCExtern] > 0

	const size = 8
	loc := 1
	if !isExtern {
		s.sp -= size
		loc = s.sp
	} else {
		s.out.writeil(fmt.Sprintf("extern %s", ident))
	}

	decl := &Decl{
		Type: Type{Spec: spec, Decl: d},
		Size: size,
		Loc:  loc,
	}
	s.vars[ident] = decl

	s.out.writeil(fmt.Sprintf("; alloced `%s` on stack at %d", ident, decl.Loc))
	if s.cfg.GetBool("diagnostics.verbose") {
		s.diags.Add(DiagInfo, d.Range(), "declared identifier `%s` as `%s` `%s`", ident, spec, d)
	}

	if id.Initializer == nil {
		return nil
	}
	initVal, err := s.GenExpr(id.Initializer)
	if err != nil {
		return err
	}
	if err := s.ValRead(&initVal, 0); err != nil {
		return err
	}
	target, err := s.vars.FindIdent(ident)
	if err != nil {
		return err
	}
	return s.ValStore(&target, 0)
}

func (s *State) genWhile(n *StmtWhileNode) error {
	labelStart, labelEnd := s.getLabel(), s.getLabel()
	s.putLabel(labelStart)
	cond, err := s.GenExpr(n.Cond)
	if err != nil {
		return err
	}
	if err := s.ValRead(&cond, 0); err != nil {
		return err
	}
	s.out.writeil("cmp rax, 0")
	s.out.writeil(fmt.Sprintf("je label_%d", labelEnd))
	if err := s.GenStmt(n.Stmt); err != nil {
		return err
	}
	s.out.writeil(fmt.Sprintf("jmp label_%d", labelStart))
	s.putLabel(labelEnd)
	return nil
}

// genIf lowers the then-branch only. The AST shape supports an else
// branch, but nothing here ever reads n.Else; it's accepted into the
// tree and silently dropped.
func (s *State) genIf(n *StmtIfNode) error {
	labelEnd := s.getLabel()
	cond, err := s.GenExpr(n.Cond)
	if err != nil {
		return err
	}
	if err := s.ValRead(&cond, 0); err != nil {
		return err
	}
	s.out.writeil("cmp rax, 0")
	s.out.writeil(fmt.Sprintf("je label_%d", labelEnd))
	if err := s.GenStmt(n.Stmt); err != nil {
		return err
	}
	s.putLabel(labelEnd)
	return nil
}
