// Package minic implements a single-pass code generator that lowers a
// C-subset abstract syntax tree into x86-64 assembly text.
package minic

import "fmt"

// Range is a half-open [Start, End) byte span into whatever source
// text produced a node. The core never reads source text itself; it
// only carries Range through to diagnostics.
type Range struct{ Start, End int }

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Node is the tagged-variant interface every AST node satisfies.
// There is exactly one concrete type per grammar production; callers
// dispatch on the concrete type with a type switch (see astInspect and
// ast_printer.go), never via behavior overridden per type.
type Node interface {
	Range() Range
	String() string
	Accept(NodeVisitor) error
}

// ---- Expressions ----

type IdentNode struct {
	rg   Range
	Name string
}

func (n *IdentNode) Range() Range                { return n.rg }
func (n *IdentNode) String() string               { return n.Name }
func (n *IdentNode) Accept(v NodeVisitor) error    { return v.VisitIdent(n) }

type IntLitNode struct {
	rg    Range
	Value int64
}

func (n *IntLitNode) Range() Range             { return n.rg }
func (n *IntLitNode) String() string           { return fmt.Sprintf("%d", n.Value) }
func (n *IntLitNode) Accept(v NodeVisitor) error { return v.VisitIntLit(n) }

type CharLitNode struct {
	rg    Range
	Value int32
}

func (n *CharLitNode) Range() Range             { return n.rg }
func (n *CharLitNode) String() string           { return fmt.Sprintf("'%c'", n.Value) }
func (n *CharLitNode) Accept(v NodeVisitor) error { return v.VisitCharLit(n) }

type StringLitNode struct {
	rg    Range
	Value string
}

func (n *StringLitNode) Range() Range             { return n.rg }
func (n *StringLitNode) String() string           { return fmt.Sprintf("%q", n.Value) }
func (n *StringLitNode) Accept(v NodeVisitor) error { return v.VisitStringLit(n) }

// IndexNode represents `A[B]`. Not implemented by the expression
// generator, but part of the closed AST shape the core must be able
// to name in a diagnostic when rejecting it.
type IndexNode struct {
	rg   Range
	A, B Node
}

func (n *IndexNode) Range() Range             { return n.rg }
func (n *IndexNode) String() string           { return fmt.Sprintf("%s[%s]", n.A, n.B) }
func (n *IndexNode) Accept(v NodeVisitor) error { return v.VisitIndex(n) }

// MemberNode represents `A.Name`.
type MemberNode struct {
	rg   Range
	A    Node
	Name string
}

func (n *MemberNode) Range() Range             { return n.rg }
func (n *MemberNode) String() string           { return fmt.Sprintf("%s.%s", n.A, n.Name) }
func (n *MemberNode) Accept(v NodeVisitor) error { return v.VisitMember(n) }

// MemberPtrNode represents `A->Name`.
type MemberPtrNode struct {
	rg   Range
	A    Node
	Name string
}

func (n *MemberPtrNode) Range() Range             { return n.rg }
func (n *MemberPtrNode) String() string           { return fmt.Sprintf("%s->%s", n.A, n.Name) }
func (n *MemberPtrNode) Accept(v NodeVisitor) error { return v.VisitMemberPtr(n) }

type UnaryOp int

const (
	UnaryPreIncr UnaryOp = iota
	UnaryPreDecr
	UnaryPostIncr
	UnaryPostDecr
	UnaryRef
	UnaryDeref
	UnaryPlus
	UnaryMinus
	UnaryNot
	UnaryNotB
	UnarySizeof
)

func (op UnaryOp) String() string {
	return [...]string{"++", "--", "++", "--", "&", "*", "+", "-", "!", "~", "sizeof"}[op]
}

type UnaryNode struct {
	rg   Range
	A    Node
	Op   UnaryOp
}

func (n *UnaryNode) Range() Range             { return n.rg }
func (n *UnaryNode) String() string           { return fmt.Sprintf("(%s %s)", n.Op, n.A) }
func (n *UnaryNode) Accept(v NodeVisitor) error { return v.VisitUnary(n) }

// CompoundLiteralNode represents `(T){ ... }`.
type CompoundLiteralNode struct {
	rg       Range
	TypeName *TypeNameNode
	Items    []Node
}

func (n *CompoundLiteralNode) Range() Range { return n.rg }
func (n *CompoundLiteralNode) String() string {
	return fmt.Sprintf("(%s){...}", n.TypeName)
}
func (n *CompoundLiteralNode) Accept(v NodeVisitor) error { return v.VisitCompoundLiteral(n) }

type SizeofExprNode struct {
	rg       Range
	TypeName *TypeNameNode
}

func (n *SizeofExprNode) Range() Range             { return n.rg }
func (n *SizeofExprNode) String() string           { return fmt.Sprintf("sizeof(%s)", n.TypeName) }
func (n *SizeofExprNode) Accept(v NodeVisitor) error { return v.VisitSizeofExpr(n) }

type AlignofExprNode struct {
	rg       Range
	TypeName *TypeNameNode
}

func (n *AlignofExprNode) Range() Range             { return n.rg }
func (n *AlignofExprNode) String() string           { return fmt.Sprintf("_Alignof(%s)", n.TypeName) }
func (n *AlignofExprNode) Accept(v NodeVisitor) error { return v.VisitAlignofExpr(n) }

type CastNode struct {
	rg       Range
	TypeName *TypeNameNode
	Expr     Node
}

func (n *CastNode) Range() Range             { return n.rg }
func (n *CastNode) String() string           { return fmt.Sprintf("(%s)%s", n.TypeName, n.Expr) }
func (n *CastNode) Accept(v NodeVisitor) error { return v.VisitCast(n) }

type BinOp int

const (
	BinMul BinOp = iota
	BinDiv
	BinMod
	BinAdd
	BinSub
	BinLShift
	BinRShift
	BinLt
	BinGt
	BinLeq
	BinGeq
	BinEq
	BinNeq
	BinAnd
	BinXor
	BinOr
	BinAndB
	BinOrB
	BinAssign
	BinComma
)

func (op BinOp) String() string {
	return [...]string{
		"*", "/", "%", "+", "-", "<<", ">>", "<", ">", "<=", ">=", "==", "!=",
		"&", "^", "|", "&&", "||", "=", ",",
	}[op]
}

type BinNode struct {
	rg   Range
	A, B Node
	Op   BinOp
}

func (n *BinNode) Range() Range             { return n.rg }
func (n *BinNode) String() string           { return fmt.Sprintf("(%s %s %s)", n.A, n.Op, n.B) }
func (n *BinNode) Accept(v NodeVisitor) error { return v.VisitBin(n) }

type ConditionalNode struct {
	rg               Range
	Cond, Then, Else Node
}

func (n *ConditionalNode) Range() Range { return n.rg }
func (n *ConditionalNode) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", n.Cond, n.Then, n.Else)
}
func (n *ConditionalNode) Accept(v NodeVisitor) error { return v.VisitConditional(n) }

type CallNode struct {
	rg     Range
	Callee Node
	Args   []Node
}

func (n *CallNode) Range() Range             { return n.rg }
func (n *CallNode) String() string           { return fmt.Sprintf("%s(...)", n.Callee) }
func (n *CallNode) Accept(v NodeVisitor) error { return v.VisitCall(n) }

// ---- Statements ----

type StmtLabeledNode struct {
	rg    Range
	Label string
	Stmt  Node
}

func (n *StmtLabeledNode) Range() Range             { return n.rg }
func (n *StmtLabeledNode) String() string           { return fmt.Sprintf("%s: %s", n.Label, n.Stmt) }
func (n *StmtLabeledNode) Accept(v NodeVisitor) error { return v.VisitStmtLabeled(n) }

type StmtLabeledCaseNode struct {
	rg   Range
	Expr Node
	Stmt Node
}

func (n *StmtLabeledCaseNode) Range() Range { return n.rg }
func (n *StmtLabeledCaseNode) String() string {
	return fmt.Sprintf("case %s: %s", n.Expr, n.Stmt)
}
func (n *StmtLabeledCaseNode) Accept(v NodeVisitor) error { return v.VisitStmtLabeledCase(n) }

type StmtLabeledDefaultNode struct {
	rg   Range
	Stmt Node
}

func (n *StmtLabeledDefaultNode) Range() Range { return n.rg }
func (n *StmtLabeledDefaultNode) String() string {
	return fmt.Sprintf("default: %s", n.Stmt)
}
func (n *StmtLabeledDefaultNode) Accept(v NodeVisitor) error { return v.VisitStmtLabeledDefault(n) }

// StmtExprNode is an expression statement. Expr is nil for the empty
// statement `;`.
type StmtExprNode struct {
	rg   Range
	Expr Node
}

func (n *StmtExprNode) Range() Range { return n.rg }
func (n *StmtExprNode) String() string {
	if n.Expr == nil {
		return ";"
	}
	return fmt.Sprintf("%s;", n.Expr)
}
func (n *StmtExprNode) Accept(v NodeVisitor) error { return v.VisitStmtExpr(n) }

type StmtCompNode struct {
	rg    Range
	Items []Node
}

func (n *StmtCompNode) Range() Range             { return n.rg }
func (n *StmtCompNode) String() string           { return fmt.Sprintf("{ %d items }", len(n.Items)) }
func (n *StmtCompNode) Accept(v NodeVisitor) error { return v.VisitStmtComp(n) }

type StmtWhileNode struct {
	rg         Range
	Cond, Stmt Node
}

func (n *StmtWhileNode) Range() Range             { return n.rg }
func (n *StmtWhileNode) String() string           { return fmt.Sprintf("while (%s) %s", n.Cond, n.Stmt) }
func (n *StmtWhileNode) Accept(v NodeVisitor) error { return v.VisitStmtWhile(n) }

type StmtDoWhileNode struct {
	rg         Range
	Cond, Stmt Node
}

func (n *StmtDoWhileNode) Range() Range { return n.rg }
func (n *StmtDoWhileNode) String() string {
	return fmt.Sprintf("do %s while (%s)", n.Stmt, n.Cond)
}
func (n *StmtDoWhileNode) Accept(v NodeVisitor) error { return v.VisitStmtDoWhile(n) }

type StmtForNode struct {
	rg                Range
	Init, Cond, Post, Stmt Node
}

func (n *StmtForNode) Range() Range { return n.rg }
func (n *StmtForNode) String() string {
	return fmt.Sprintf("for (%s; %s; %s) %s", n.Init, n.Cond, n.Post, n.Stmt)
}
func (n *StmtForNode) Accept(v NodeVisitor) error { return v.VisitStmtFor(n) }

// StmtIfNode's Else is nil when there is no else-branch. The statement
// generator never wires Else even when it is present.
type StmtIfNode struct {
	rg               Range
	Cond, Stmt, Else Node
}

func (n *StmtIfNode) Range() Range { return n.rg }
func (n *StmtIfNode) String() string {
	if n.Else == nil {
		return fmt.Sprintf("if (%s) %s", n.Cond, n.Stmt)
	}
	return fmt.Sprintf("if (%s) %s else %s", n.Cond, n.Stmt, n.Else)
}
func (n *StmtIfNode) Accept(v NodeVisitor) error { return v.VisitStmtIf(n) }

type StmtSwitchNode struct {
	rg         Range
	Cond, Stmt Node
}

func (n *StmtSwitchNode) Range() Range { return n.rg }
func (n *StmtSwitchNode) String() string {
	return fmt.Sprintf("switch (%s) %s", n.Cond, n.Stmt)
}
func (n *StmtSwitchNode) Accept(v NodeVisitor) error { return v.VisitStmtSwitch(n) }

type StmtGotoNode struct {
	rg    Range
	Label string
}

func (n *StmtGotoNode) Range() Range             { return n.rg }
func (n *StmtGotoNode) String() string           { return fmt.Sprintf("goto %s;", n.Label) }
func (n *StmtGotoNode) Accept(v NodeVisitor) error { return v.VisitStmtGoto(n) }

type StmtContinueNode struct{ rg Range }

func (n *StmtContinueNode) Range() Range             { return n.rg }
func (n *StmtContinueNode) String() string           { return "continue;" }
func (n *StmtContinueNode) Accept(v NodeVisitor) error { return v.VisitStmtContinue(n) }

type StmtBreakNode struct{ rg Range }

func (n *StmtBreakNode) Range() Range             { return n.rg }
func (n *StmtBreakNode) String() string           { return "break;" }
func (n *StmtBreakNode) Accept(v NodeVisitor) error { return v.VisitStmtBreak(n) }

// StmtReturnNode's Expr is nil for a bare `return;`.
type StmtReturnNode struct {
	rg   Range
	Expr Node
}

func (n *StmtReturnNode) Range() Range { return n.rg }
func (n *StmtReturnNode) String() string {
	if n.Expr == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", n.Expr)
}
func (n *StmtReturnNode) Accept(v NodeVisitor) error { return v.VisitStmtReturn(n) }

// ---- Declarations & types ----

const (
	NumStorageClass      = 6
	NumBuiltinTypes      = 11
	NumTypeQualifiers    = 4
	NumFunctionSpecifiers = 2
)

type StorageClass int

const (
	SCTypedef StorageClass = iota
	SCExtern
	SCStatic
	SCThreadLocal
	SCAuto
	SCRegister
)

type BuiltinType int

const (
	BTVoid BuiltinType = iota
	BTChar
	BTShort
	BTInt
	BTLong
	BTFloat
	BTDouble
	BTSigned
	BTUnsigned
	BTBool
	BTComplex
)

type TypeQualifier int

const (
	QualConst TypeQualifier = iota
	QualRestrict
	QualVolatile
	QualAtomic
)

type FunctionSpecifier int

const (
	FSInline FunctionSpecifier = iota
	FSNoreturn
)

// DeclSpecNode is "declaration-specifiers": the counted bags of
// storage-class/builtin-type/qualifier/function-specifier tokens plus
// the ordered lists of struct/union/enum/typedef-name specifiers and
// alignment specifiers that appeared in source order.
type DeclSpecNode struct {
	rg                 Range
	StorageClass       [NumStorageClass]int
	BuiltinTypes       [NumBuiltinTypes]int
	Qualifiers         [NumTypeQualifiers]int
	FunctionSpecifiers [NumFunctionSpecifiers]int
	TypeSpecifiers     []Node
	AlignmentSpecifiers []Node
}

func (n *DeclSpecNode) Range() Range { return n.rg }
func (n *DeclSpecNode) String() string {
	return "<declaration-specifiers>"
}
func (n *DeclSpecNode) Accept(v NodeVisitor) error { return v.VisitDeclSpec(n) }

// PointerDeclaratorNode is one `*` in a declarator chain, carrying the
// qualifiers written directly after it (`int *const p`).
type PointerDeclaratorNode struct {
	rg         Range
	Qualifiers [NumTypeQualifiers]int
}

func (n *PointerDeclaratorNode) Range() Range             { return n.rg }
func (n *PointerDeclaratorNode) String() string           { return "*" }
func (n *PointerDeclaratorNode) Accept(v NodeVisitor) error { return v.VisitPointerDeclarator(n) }

// ArrayDeclaratorNode is one `[Size]` in a declarator chain. Size may
// be nil for an incomplete array type; the type algebra's Size query
// fails with a size-unknown diagnostic in that case.
type ArrayDeclaratorNode struct {
	rg   Range
	Size Node
}

func (n *ArrayDeclaratorNode) Range() Range { return n.rg }
func (n *ArrayDeclaratorNode) String() string {
	if n.Size == nil {
		return "[]"
	}
	return fmt.Sprintf("[%s]", n.Size)
}
func (n *ArrayDeclaratorNode) Accept(v NodeVisitor) error { return v.VisitArrayDeclarator(n) }

// FunctionDeclaratorNode is one `(params...)` in a declarator chain.
type FunctionDeclaratorNode struct {
	rg     Range
	Params []*ParameterDeclarationNode
}

func (n *FunctionDeclaratorNode) Range() Range             { return n.rg }
func (n *FunctionDeclaratorNode) String() string           { return fmt.Sprintf("(%d params)", len(n.Params)) }
func (n *FunctionDeclaratorNode) Accept(v NodeVisitor) error { return v.VisitFunctionDeclarator(n) }

type ParameterDeclarationNode struct {
	rg           Range
	Specifiers   *DeclSpecNode
	Declarator   *DeclaratorNode
}

func (n *ParameterDeclarationNode) Range() Range { return n.rg }
func (n *ParameterDeclarationNode) String() string {
	return fmt.Sprintf("<param %s>", n.Declarator)
}
func (n *ParameterDeclarationNode) Accept(v NodeVisitor) error { return v.VisitParameterDeclaration(n) }

// DeclaratorNode carries an optional identifier and the ordered chain
// of declarator-operators applied to it, innermost-first: Ops[0] is
// the operator closest to the identifier.
type DeclaratorNode struct {
	rg      Range
	Ident   string
	HasIdent bool
	Ops     []Node // *PointerDeclaratorNode | *ArrayDeclaratorNode | *FunctionDeclaratorNode
}

func (n *DeclaratorNode) Range() Range { return n.rg }
func (n *DeclaratorNode) String() string {
	if n.HasIdent {
		return n.Ident
	}
	return "<anonymous>"
}
func (n *DeclaratorNode) Accept(v NodeVisitor) error { return v.VisitDeclarator(n) }

type InitDeclaratorNode struct {
	rg          Range
	Declarator  *DeclaratorNode
	Initializer Node
}

func (n *InitDeclaratorNode) Range() Range { return n.rg }
func (n *InitDeclaratorNode) String() string {
	if n.Initializer == nil {
		return n.Declarator.String()
	}
	return fmt.Sprintf("%s = %s", n.Declarator, n.Initializer)
}
func (n *InitDeclaratorNode) Accept(v NodeVisitor) error { return v.VisitInitDeclarator(n) }

type DeclarationNode struct {
	rg                Range
	Specifiers        *DeclSpecNode
	InitDeclarators   []*InitDeclaratorNode
}

func (n *DeclarationNode) Range() Range             { return n.rg }
func (n *DeclarationNode) String() string           { return "<declaration>" }
func (n *DeclarationNode) Accept(v NodeVisitor) error { return v.VisitDeclaration(n) }

type TranslationUnitNode struct {
	rg    Range
	Items []Node
}

func (n *TranslationUnitNode) Range() Range             { return n.rg }
func (n *TranslationUnitNode) String() string           { return fmt.Sprintf("<translation-unit %d items>", len(n.Items)) }
func (n *TranslationUnitNode) Accept(v NodeVisitor) error { return v.VisitTranslationUnit(n) }

type FunctionDefinitionNode struct {
	rg                 Range
	Specifiers         *DeclSpecNode
	Declarator         *DeclaratorNode
	CompoundStatement  *StmtCompNode
}

func (n *FunctionDefinitionNode) Range() Range { return n.rg }
func (n *FunctionDefinitionNode) String() string {
	return fmt.Sprintf("<function-definition %s>", n.Declarator)
}
func (n *FunctionDefinitionNode) Accept(v NodeVisitor) error { return v.VisitFunctionDefinition(n) }

// ---- struct/union/enum (accepted into the AST shape; the codegen
// core rejects member access and sizeof on them, but the
// declaration-specifier list can still reference them) ----

type SUKind int

const (
	SUStruct SUKind = iota
	SUUnion
)

type SUSpecifierNode struct {
	rg           Range
	Kind         SUKind
	Ident        string
	Declarations []Node
}

func (n *SUSpecifierNode) Range() Range             { return n.rg }
func (n *SUSpecifierNode) String() string           { return fmt.Sprintf("<su %s>", n.Ident) }
func (n *SUSpecifierNode) Accept(v NodeVisitor) error { return v.VisitSUSpecifier(n) }

type SUSpecifierIncompleteNode struct {
	rg    Range
	Kind  SUKind
	Ident string
}

func (n *SUSpecifierIncompleteNode) Range() Range { return n.rg }
func (n *SUSpecifierIncompleteNode) String() string {
	return fmt.Sprintf("<su-incomplete %s>", n.Ident)
}
func (n *SUSpecifierIncompleteNode) Accept(v NodeVisitor) error {
	return v.VisitSUSpecifierIncomplete(n)
}

type StructDeclarationNode struct {
	rg                   Range
	SpecifierQualifierList *DeclSpecNode
	Declarators          []*StructDeclaratorNode
}

func (n *StructDeclarationNode) Range() Range             { return n.rg }
func (n *StructDeclarationNode) String() string           { return "<struct-declaration>" }
func (n *StructDeclarationNode) Accept(v NodeVisitor) error { return v.VisitStructDeclaration(n) }

type StructDeclaratorNode struct {
	rg           Range
	Declarator   *DeclaratorNode
	BitfieldExpr Node
}

func (n *StructDeclaratorNode) Range() Range             { return n.rg }
func (n *StructDeclaratorNode) String() string           { return "<struct-declarator>" }
func (n *StructDeclaratorNode) Accept(v NodeVisitor) error { return v.VisitStructDeclarator(n) }

type EnumSpecifierNode struct {
	rg          Range
	Ident       string
	Enumerators []*EnumeratorNode
}

func (n *EnumSpecifierNode) Range() Range             { return n.rg }
func (n *EnumSpecifierNode) String() string           { return fmt.Sprintf("<enum %s>", n.Ident) }
func (n *EnumSpecifierNode) Accept(v NodeVisitor) error { return v.VisitEnumSpecifier(n) }

type EnumSpecifierIncompleteNode struct {
	rg    Range
	Ident string
}

func (n *EnumSpecifierIncompleteNode) Range() Range { return n.rg }
func (n *EnumSpecifierIncompleteNode) String() string {
	return fmt.Sprintf("<enum-incomplete %s>", n.Ident)
}
func (n *EnumSpecifierIncompleteNode) Accept(v NodeVisitor) error {
	return v.VisitEnumSpecifierIncomplete(n)
}

type EnumeratorNode struct {
	rg    Range
	Ident string
	Expr  Node
}

func (n *EnumeratorNode) Range() Range             { return n.rg }
func (n *EnumeratorNode) String() string           { return n.Ident }
func (n *EnumeratorNode) Accept(v NodeVisitor) error { return v.VisitEnumerator(n) }

// ---- designators & initializers (accepted; rejected by the
// expression generator since initializer-lists aren't implemented) ----

type DesignatorIndexNode struct {
	rg   Range
	Expr Node
}

func (n *DesignatorIndexNode) Range() Range             { return n.rg }
func (n *DesignatorIndexNode) String() string           { return fmt.Sprintf("[%s]", n.Expr) }
func (n *DesignatorIndexNode) Accept(v NodeVisitor) error { return v.VisitDesignatorIndex(n) }

type DesignatorIdentNode struct {
	rg    Range
	Ident string
}

func (n *DesignatorIdentNode) Range() Range             { return n.rg }
func (n *DesignatorIdentNode) String() string           { return fmt.Sprintf(".%s", n.Ident) }
func (n *DesignatorIdentNode) Accept(v NodeVisitor) error { return v.VisitDesignatorIdent(n) }

type DesignationNode struct {
	rg          Range
	Designators []Node
}

func (n *DesignationNode) Range() Range             { return n.rg }
func (n *DesignationNode) String() string           { return "<designation>" }
func (n *DesignationNode) Accept(v NodeVisitor) error { return v.VisitDesignation(n) }

type InitializerNode struct {
	rg   Range
	List []Node
}

func (n *InitializerNode) Range() Range             { return n.rg }
func (n *InitializerNode) String() string           { return "<initializer>" }
func (n *InitializerNode) Accept(v NodeVisitor) error { return v.VisitInitializer(n) }

type InitializerListItemNode struct {
	rg          Range
	Designation *DesignationNode
	Initializer Node
}

func (n *InitializerListItemNode) Range() Range             { return n.rg }
func (n *InitializerListItemNode) String() string           { return "<initializer-list-item>" }
func (n *InitializerListItemNode) Accept(v NodeVisitor) error { return v.VisitInitializerListItem(n) }

// TypeNameNode is a standalone type expression, as used by `sizeof`,
// casts, and compound literals.
type TypeNameNode struct {
	rg                   Range
	SpecifierQualifierList *DeclSpecNode
	Declarator           *DeclaratorNode
}

func (n *TypeNameNode) Range() Range { return n.rg }
func (n *TypeNameNode) String() string {
	return fmt.Sprintf("<type-name %s>", n.Declarator)
}
func (n *TypeNameNode) Accept(v NodeVisitor) error { return v.VisitTypeName(n) }

type StaticAssertNode struct {
	rg             Range
	Cond, Message  Node
}

func (n *StaticAssertNode) Range() Range             { return n.rg }
func (n *StaticAssertNode) String() string           { return "<static-assert>" }
func (n *StaticAssertNode) Accept(v NodeVisitor) error { return v.VisitStaticAssert(n) }
