package minic

// Fixtures is the set of built-in sample translation units the CLI and
// the test suite exercise the generator against, standing in for a
// real parser's output (see astbuild.go).
var Fixtures = map[string]*TranslationUnitNode{
	"simple-assign":   SimpleAssignFixture(),
	"pointer-local":   PointerLocalFixture(),
	"undefined-ident": UndefinedIdentFixture(),
	"call-convention": CallConventionFixture(),
	"while-loop":      WhileLoopFixture(),
}

// SimpleAssignFixture builds `int main() { int x; x = 5; }`.
func SimpleAssignFixture() *TranslationUnitNode {
	return TU(FuncDef(DeclSpecInt(), "main", Comp(
		Decl(DeclSpecInt(), InitDecl(Declarator("x"), nil)),
		ExprStmt(Bin(BinAssign, Ident("x"), IntLit(5))),
	)))
}

// PointerLocalFixture builds `int main(){ int a=5; int *p=&a; *p=1; }`.
func PointerLocalFixture() *TranslationUnitNode {
	return TU(FuncDef(DeclSpecInt(), "main", Comp(
		Decl(DeclSpecInt(), InitDecl(Declarator("a"), IntLit(5))),
		Decl(DeclSpecInt(), InitDecl(Declarator("p", PointerOp()), Unary(UnaryRef, Ident("a")))),
		ExprStmt(Bin(BinAssign, Unary(UnaryDeref, Ident("p")), IntLit(1))),
	)))
}

// UndefinedIdentFixture builds `int main(){ x; }`.
func UndefinedIdentFixture() *TranslationUnitNode {
	return TU(FuncDef(DeclSpecInt(), "main", Comp(
		ExprStmt(Ident("x")),
	)))
}

// AddressOfLiteralFixture builds `int main(){ &3; }`. Not exposed
// through the CLI's -fixture flag; used directly by tests exercising
// the address-of-rvalue diagnostic.
func AddressOfLiteralFixture() *TranslationUnitNode {
	return TU(FuncDef(DeclSpecInt(), "main", Comp(
		ExprStmt(Unary(UnaryRef, IntLit(3))),
	)))
}

// CallConventionFixture builds `int main(){ f(1,2,3,4,5,6); }`.
func CallConventionFixture() *TranslationUnitNode {
	return TU(
		Decl(DeclSpecExtern(DeclSpecInt()), InitDecl(Declarator("f", FuncOp()), nil)),
		FuncDef(DeclSpecInt(), "main", Comp(
			ExprStmt(Call(Ident("f"), IntLit(1), IntLit(2), IntLit(3), IntLit(4), IntLit(5), IntLit(6))),
		)),
	)
}

// WhileLoopFixture builds `int main(){ int i; while (i < 3) i = i + 1; }`.
func WhileLoopFixture() *TranslationUnitNode {
	return TU(FuncDef(DeclSpecInt(), "main", Comp(
		Decl(DeclSpecInt(), InitDecl(Declarator("i"), nil)),
		While(
			Bin(BinLt, Ident("i"), IntLit(3)),
			ExprStmt(Bin(BinAssign, Ident("i"), Bin(BinAdd, Ident("i"), IntLit(1)))),
		),
	)))
}
