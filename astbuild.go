package minic

// astbuild provides small constructor helpers for assembling AST
// nodes programmatically. There is no parser in this repository (see
// the purpose-and-scope note on fixture ASTs); every translation unit
// exercised by the CLI or the test suite is built with these helpers,
// the way a front end's parser actions would build them, minus source
// positions (every node gets the zero Range).

func Ident(name string) *IdentNode             { return &IdentNode{Name: name} }
func IntLit(v int64) *IntLitNode               { return &IntLitNode{Value: v} }
func CharLit(v int32) *CharLitNode             { return &CharLitNode{Value: v} }
func StringLit(v string) *StringLitNode        { return &StringLitNode{Value: v} }

func Unary(op UnaryOp, a Node) *UnaryNode { return &UnaryNode{A: a, Op: op} }
func Bin(op BinOp, a, b Node) *BinNode    { return &BinNode{A: a, B: b, Op: op} }
func Call(callee Node, args ...Node) *CallNode {
	return &CallNode{Callee: callee, Args: args}
}
func SizeofType(tn *TypeNameNode) *SizeofExprNode { return &SizeofExprNode{TypeName: tn} }

func ExprStmt(e Node) *StmtExprNode { return &StmtExprNode{Expr: e} }
func Comp(items ...Node) *StmtCompNode {
	return &StmtCompNode{Items: items}
}
func While(cond, stmt Node) *StmtWhileNode { return &StmtWhileNode{Cond: cond, Stmt: stmt} }
func If(cond, stmt Node) *StmtIfNode       { return &StmtIfNode{Cond: cond, Stmt: stmt} }

// DeclSpecInt/DeclSpecChar build a plain (no qualifiers, no storage
// class) declaration-specifier for `int`/`char`.
func DeclSpecInt() *DeclSpecNode {
	d := &DeclSpecNode{}
	d.BuiltinTypes[BTInt]++
	return d
}

func DeclSpecChar() *DeclSpecNode {
	d := &DeclSpecNode{}
	d.BuiltinTypes[BTChar]++
	return d
}

// DeclSpecExtern wraps spec with the `extern` storage class.
func DeclSpecExtern(spec *DeclSpecNode) *DeclSpecNode {
	d := *spec
	d.StorageClass[SCExtern]++
	return &d
}

func PointerOp() *PointerDeclaratorNode    { return &PointerDeclaratorNode{} }
func ArrayOp(size Node) *ArrayDeclaratorNode { return &ArrayDeclaratorNode{Size: size} }
func FuncOp(params ...*ParameterDeclarationNode) *FunctionDeclaratorNode {
	return &FunctionDeclaratorNode{Params: params}
}

// Declarator builds a named declarator with the given operator chain,
// innermost first (e.g. Declarator("p", PointerOp()) for `*p`).
func Declarator(ident string, ops ...Node) *DeclaratorNode {
	return &DeclaratorNode{Ident: ident, HasIdent: true, Ops: ops}
}

func InitDecl(d *DeclaratorNode, init Node) *InitDeclaratorNode {
	return &InitDeclaratorNode{Declarator: d, Initializer: init}
}

func Decl(spec *DeclSpecNode, inits ...*InitDeclaratorNode) *DeclarationNode {
	return &DeclarationNode{Specifiers: spec, InitDeclarators: inits}
}

// FuncDef builds a function definition with no parameters — the only
// shape this core's fixtures need (`int name() { ... }`).
func FuncDef(spec *DeclSpecNode, ident string, body *StmtCompNode) *FunctionDefinitionNode {
	return &FunctionDefinitionNode{
		Specifiers:        spec,
		Declarator:        Declarator(ident, FuncOp()),
		CompoundStatement: body,
	}
}

func TU(items ...Node) *TranslationUnitNode {
	return &TranslationUnitNode{Items: items}
}

// TypeName builds a standalone type-name node, as used by sizeof and
// casts (e.g. TypeName(DeclSpecInt()) for plain `int`).
func TypeName(spec *DeclSpecNode, ops ...Node) *TypeNameNode {
	var d *DeclaratorNode
	if len(ops) > 0 {
		d = &DeclaratorNode{Ops: ops}
	} else {
		d = &DeclaratorNode{}
	}
	return &TypeNameNode{SpecifierQualifierList: spec, Declarator: d}
}
