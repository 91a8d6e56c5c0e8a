package minic

import "fmt"

// NodeVisitor is the interface every Node's Accept dispatches into,
// with one method per node kind, mirroring the exhaustive type switch
// a C implementation would do over ast_kind. The code generator, the
// pretty-printer and the tree dump do not implement it; they dispatch
// with type switches (see astInspect). baseVisitor is the only
// implementation in this package.
type NodeVisitor interface {
	VisitIdent(*IdentNode) error
	VisitIntLit(*IntLitNode) error
	VisitCharLit(*CharLitNode) error
	VisitStringLit(*StringLitNode) error
	VisitIndex(*IndexNode) error
	VisitMember(*MemberNode) error
	VisitMemberPtr(*MemberPtrNode) error
	VisitUnary(*UnaryNode) error
	VisitCompoundLiteral(*CompoundLiteralNode) error
	VisitSizeofExpr(*SizeofExprNode) error
	VisitAlignofExpr(*AlignofExprNode) error
	VisitCast(*CastNode) error
	VisitBin(*BinNode) error
	VisitConditional(*ConditionalNode) error
	VisitCall(*CallNode) error

	VisitStmtLabeled(*StmtLabeledNode) error
	VisitStmtLabeledCase(*StmtLabeledCaseNode) error
	VisitStmtLabeledDefault(*StmtLabeledDefaultNode) error
	VisitStmtExpr(*StmtExprNode) error
	VisitStmtComp(*StmtCompNode) error
	VisitStmtWhile(*StmtWhileNode) error
	VisitStmtDoWhile(*StmtDoWhileNode) error
	VisitStmtFor(*StmtForNode) error
	VisitStmtIf(*StmtIfNode) error
	VisitStmtSwitch(*StmtSwitchNode) error
	VisitStmtGoto(*StmtGotoNode) error
	VisitStmtContinue(*StmtContinueNode) error
	VisitStmtBreak(*StmtBreakNode) error
	VisitStmtReturn(*StmtReturnNode) error

	VisitDeclSpec(*DeclSpecNode) error
	VisitPointerDeclarator(*PointerDeclaratorNode) error
	VisitArrayDeclarator(*ArrayDeclaratorNode) error
	VisitFunctionDeclarator(*FunctionDeclaratorNode) error
	VisitParameterDeclaration(*ParameterDeclarationNode) error
	VisitDeclarator(*DeclaratorNode) error
	VisitInitDeclarator(*InitDeclaratorNode) error
	VisitDeclaration(*DeclarationNode) error
	VisitTranslationUnit(*TranslationUnitNode) error
	VisitFunctionDefinition(*FunctionDefinitionNode) error

	VisitSUSpecifier(*SUSpecifierNode) error
	VisitSUSpecifierIncomplete(*SUSpecifierIncompleteNode) error
	VisitStructDeclaration(*StructDeclarationNode) error
	VisitStructDeclarator(*StructDeclaratorNode) error
	VisitEnumSpecifier(*EnumSpecifierNode) error
	VisitEnumSpecifierIncomplete(*EnumSpecifierIncompleteNode) error
	VisitEnumerator(*EnumeratorNode) error

	VisitDesignatorIndex(*DesignatorIndexNode) error
	VisitDesignatorIdent(*DesignatorIdentNode) error
	VisitDesignation(*DesignationNode) error
	VisitInitializer(*InitializerNode) error
	VisitInitializerListItem(*InitializerListItemNode) error
	VisitTypeName(*TypeNameNode) error
	VisitStaticAssert(*StaticAssertNode) error
}

// baseVisitor implements NodeVisitor with a no-op for every method.
// Visitors that only care about a handful of node kinds embed it and
// override the ones they need, the way a partial interface
// implementation would in a language with default methods.
type baseVisitor struct{}

func (baseVisitor) VisitIdent(*IdentNode) error                             { return nil }
func (baseVisitor) VisitIntLit(*IntLitNode) error                           { return nil }
func (baseVisitor) VisitCharLit(*CharLitNode) error                         { return nil }
func (baseVisitor) VisitStringLit(*StringLitNode) error                     { return nil }
func (baseVisitor) VisitIndex(*IndexNode) error                             { return nil }
func (baseVisitor) VisitMember(*MemberNode) error                           { return nil }
func (baseVisitor) VisitMemberPtr(*MemberPtrNode) error                     { return nil }
func (baseVisitor) VisitUnary(*UnaryNode) error                             { return nil }
func (baseVisitor) VisitCompoundLiteral(*CompoundLiteralNode) error         { return nil }
func (baseVisitor) VisitSizeofExpr(*SizeofExprNode) error                   { return nil }
func (baseVisitor) VisitAlignofExpr(*AlignofExprNode) error                 { return nil }
func (baseVisitor) VisitCast(*CastNode) error                               { return nil }
func (baseVisitor) VisitBin(*BinNode) error                                 { return nil }
func (baseVisitor) VisitConditional(*ConditionalNode) error                 { return nil }
func (baseVisitor) VisitCall(*CallNode) error                               { return nil }
func (baseVisitor) VisitStmtLabeled(*StmtLabeledNode) error                 { return nil }
func (baseVisitor) VisitStmtLabeledCase(*StmtLabeledCaseNode) error         { return nil }
func (baseVisitor) VisitStmtLabeledDefault(*StmtLabeledDefaultNode) error   { return nil }
func (baseVisitor) VisitStmtExpr(*StmtExprNode) error                      { return nil }
func (baseVisitor) VisitStmtComp(*StmtCompNode) error                      { return nil }
func (baseVisitor) VisitStmtWhile(*StmtWhileNode) error                     { return nil }
func (baseVisitor) VisitStmtDoWhile(*StmtDoWhileNode) error                 { return nil }
func (baseVisitor) VisitStmtFor(*StmtForNode) error                         { return nil }
func (baseVisitor) VisitStmtIf(*StmtIfNode) error                           { return nil }
func (baseVisitor) VisitStmtSwitch(*StmtSwitchNode) error                   { return nil }
func (baseVisitor) VisitStmtGoto(*StmtGotoNode) error                       { return nil }
func (baseVisitor) VisitStmtContinue(*StmtContinueNode) error               { return nil }
func (baseVisitor) VisitStmtBreak(*StmtBreakNode) error                     { return nil }
func (baseVisitor) VisitStmtReturn(*StmtReturnNode) error                   { return nil }
func (baseVisitor) VisitDeclSpec(*DeclSpecNode) error                       { return nil }
func (baseVisitor) VisitPointerDeclarator(*PointerDeclaratorNode) error     { return nil }
func (baseVisitor) VisitArrayDeclarator(*ArrayDeclaratorNode) error         { return nil }
func (baseVisitor) VisitFunctionDeclarator(*FunctionDeclaratorNode) error   { return nil }
func (baseVisitor) VisitParameterDeclaration(*ParameterDeclarationNode) error { return nil }
func (baseVisitor) VisitDeclarator(*DeclaratorNode) error                   { return nil }
func (baseVisitor) VisitInitDeclarator(*InitDeclaratorNode) error           { return nil }
func (baseVisitor) VisitDeclaration(*DeclarationNode) error                 { return nil }
func (baseVisitor) VisitTranslationUnit(*TranslationUnitNode) error         { return nil }
func (baseVisitor) VisitFunctionDefinition(*FunctionDefinitionNode) error   { return nil }
func (baseVisitor) VisitSUSpecifier(*SUSpecifierNode) error                 { return nil }
func (baseVisitor) VisitSUSpecifierIncomplete(*SUSpecifierIncompleteNode) error { return nil }
func (baseVisitor) VisitStructDeclaration(*StructDeclarationNode) error     { return nil }
func (baseVisitor) VisitStructDeclarator(*StructDeclaratorNode) error       { return nil }
func (baseVisitor) VisitEnumSpecifier(*EnumSpecifierNode) error             { return nil }
func (baseVisitor) VisitEnumSpecifierIncomplete(*EnumSpecifierIncompleteNode) error { return nil }
func (baseVisitor) VisitEnumerator(*EnumeratorNode) error                  { return nil }
func (baseVisitor) VisitDesignatorIndex(*DesignatorIndexNode) error         { return nil }
func (baseVisitor) VisitDesignatorIdent(*DesignatorIdentNode) error         { return nil }
func (baseVisitor) VisitDesignation(*DesignationNode) error                { return nil }
func (baseVisitor) VisitInitializer(*InitializerNode) error                { return nil }
func (baseVisitor) VisitInitializerListItem(*InitializerListItemNode) error { return nil }
func (baseVisitor) VisitTypeName(*TypeNameNode) error                      { return nil }
func (baseVisitor) VisitStaticAssert(*StaticAssertNode) error               { return nil }

// astInspect walks n and every descendant depth-first, calling fn for
// each node in pre-order. fn returning false prunes that subtree. A
// single generic walker driven by an exhaustive type switch, panicking
// on any node kind it doesn't recognize rather than silently skipping
// it.
func astInspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch t := n.(type) {
	case *IdentNode, *IntLitNode, *CharLitNode, *StringLitNode,
		*StmtContinueNode, *StmtBreakNode, *StmtGotoNode,
		*PointerDeclaratorNode, *EnumSpecifierIncompleteNode,
		*SUSpecifierIncompleteNode, *DesignatorIdentNode:
		// leaves

	case *IndexNode:
		astInspect(t.A, fn)
		astInspect(t.B, fn)
	case *MemberNode:
		astInspect(t.A, fn)
	case *MemberPtrNode:
		astInspect(t.A, fn)
	case *UnaryNode:
		astInspect(t.A, fn)
	case *CompoundLiteralNode:
		astInspect(t.TypeName, fn)
		for _, it := range t.Items {
			astInspect(it, fn)
		}
	case *SizeofExprNode:
		astInspect(t.TypeName, fn)
	case *AlignofExprNode:
		astInspect(t.TypeName, fn)
	case *CastNode:
		astInspect(t.TypeName, fn)
		astInspect(t.Expr, fn)
	case *BinNode:
		astInspect(t.A, fn)
		astInspect(t.B, fn)
	case *ConditionalNode:
		astInspect(t.Cond, fn)
		astInspect(t.Then, fn)
		astInspect(t.Else, fn)
	case *CallNode:
		astInspect(t.Callee, fn)
		for _, a := range t.Args {
			astInspect(a, fn)
		}

	case *StmtLabeledNode:
		astInspect(t.Stmt, fn)
	case *StmtLabeledCaseNode:
		astInspect(t.Expr, fn)
		astInspect(t.Stmt, fn)
	case *StmtLabeledDefaultNode:
		astInspect(t.Stmt, fn)
	case *StmtExprNode:
		astInspect(t.Expr, fn)
	case *StmtCompNode:
		for _, it := range t.Items {
			astInspect(it, fn)
		}
	case *StmtWhileNode:
		astInspect(t.Cond, fn)
		astInspect(t.Stmt, fn)
	case *StmtDoWhileNode:
		astInspect(t.Stmt, fn)
		astInspect(t.Cond, fn)
	case *StmtForNode:
		astInspect(t.Init, fn)
		astInspect(t.Cond, fn)
		astInspect(t.Post, fn)
		astInspect(t.Stmt, fn)
	case *StmtIfNode:
		astInspect(t.Cond, fn)
		astInspect(t.Stmt, fn)
		astInspect(t.Else, fn)
	case *StmtSwitchNode:
		astInspect(t.Cond, fn)
		astInspect(t.Stmt, fn)
	case *StmtReturnNode:
		astInspect(t.Expr, fn)

	case *DeclSpecNode:
		for _, ts := range t.TypeSpecifiers {
			astInspect(ts, fn)
		}
		for _, as := range t.AlignmentSpecifiers {
			astInspect(as, fn)
		}
	case *ArrayDeclaratorNode:
		astInspect(t.Size, fn)
	case *FunctionDeclaratorNode:
		for _, p := range t.Params {
			astInspect(p, fn)
		}
	case *ParameterDeclarationNode:
		astInspect(t.Specifiers, fn)
		astInspect(t.Declarator, fn)
	case *DeclaratorNode:
		for _, op := range t.Ops {
			astInspect(op, fn)
		}
	case *InitDeclaratorNode:
		astInspect(t.Declarator, fn)
		astInspect(t.Initializer, fn)
	case *DeclarationNode:
		astInspect(t.Specifiers, fn)
		for _, id := range t.InitDeclarators {
			astInspect(id, fn)
		}
	case *TranslationUnitNode:
		for _, it := range t.Items {
			astInspect(it, fn)
		}
	case *FunctionDefinitionNode:
		astInspect(t.Specifiers, fn)
		astInspect(t.Declarator, fn)
		astInspect(t.CompoundStatement, fn)

	case *SUSpecifierNode:
		for _, d := range t.Declarations {
			astInspect(d, fn)
		}
	case *StructDeclarationNode:
		astInspect(t.SpecifierQualifierList, fn)
		for _, d := range t.Declarators {
			astInspect(d, fn)
		}
	case *StructDeclaratorNode:
		astInspect(t.Declarator, fn)
		astInspect(t.BitfieldExpr, fn)
	case *EnumSpecifierNode:
		for _, e := range t.Enumerators {
			astInspect(e, fn)
		}
	case *EnumeratorNode:
		astInspect(t.Expr, fn)

	case *DesignatorIndexNode:
		astInspect(t.Expr, fn)
	case *DesignationNode:
		for _, d := range t.Designators {
			astInspect(d, fn)
		}
	case *InitializerNode:
		for _, it := range t.List {
			astInspect(it, fn)
		}
	case *InitializerListItemNode:
		astInspect(t.Designation, fn)
		astInspect(t.Initializer, fn)
	case *TypeNameNode:
		astInspect(t.SpecifierQualifierList, fn)
		astInspect(t.Declarator, fn)
	case *StaticAssertNode:
		astInspect(t.Cond, fn)
		astInspect(t.Message, fn)

	default:
		panic(fmt.Sprintf("astInspect: unhandled node type %T", n))
	}
}
