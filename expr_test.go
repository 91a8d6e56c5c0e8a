package minic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenExprIntLiteral(t *testing.T) {
	s := NewState(nil)
	v, err := s.GenExpr(IntLit(5))
	require.NoError(t, err)
	assert.Equal(t, int64(-8), v.Base)
	assert.Contains(t, s.out.String(), "mov rax, 5")
}

func TestGenExprStringLiteralInternsOnce(t *testing.T) {
	s := NewState(nil)
	_, err := s.GenExpr(StringLit("hi"))
	require.NoError(t, err)
	_, err = s.GenExpr(StringLit("there"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hi", "there"}, s.strings)
	assert.Contains(t, s.out.String(), "mov rax, s0")
	assert.Contains(t, s.out.String(), "mov rax, s1")
}

func TestGenExprUndefinedIdentFails(t *testing.T) {
	s := NewState(nil)
	_, err := s.GenExpr(Ident("x"))
	require.Error(t, err)
	assert.True(t, s.diags.HasErrors())
	assert.Contains(t, s.diags.Items()[0].Message, "undefined identifier")
}

func TestGenExprAddressOfLiteralFails(t *testing.T) {
	s := NewState(nil)
	_, err := s.GenExpr(Unary(UnaryRef, IntLit(3)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't take address of non-lvalue")
}

func TestGenExprCallTooManyArgsFails(t *testing.T) {
	s := NewState(nil)
	require.NoError(t, s.GenDeclaration(Decl(DeclSpecExtern(DeclSpecInt()), InitDecl(Declarator("f", FuncOp()), nil))))
	args := make([]Node, 7)
	for i := range args {
		args[i] = IntLit(int64(i))
	}
	_, err := s.GenExpr(Call(Ident("f"), args...))
	assert.Error(t, err)
}

func TestGenExprCallConventionRegisterOrder(t *testing.T) {
	s := NewState(nil)
	require.NoError(t, s.GenDeclaration(Decl(DeclSpecExtern(DeclSpecInt()), InitDecl(Declarator("f", FuncOp()), nil))))
	_, err := s.GenExpr(Call(Ident("f"), IntLit(1), IntLit(2), IntLit(3), IntLit(4), IntLit(5), IntLit(6)))
	require.NoError(t, err)
	out := s.out.String()
	prev := -1
	for _, reg := range []string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"} {
		line := "mov " + reg + ", rax"
		assert.Contains(t, out, line)
		idx := strings.Index(out, line)
		assert.Greater(t, idx, prev, "%s loaded out of order", reg)
		prev = idx
	}
	assert.Contains(t, out, "call f")
}

func TestGenExprAssignRequiresModifiableLvalue(t *testing.T) {
	s := NewState(nil)
	_, err := s.GenExpr(Bin(BinAssign, IntLit(1), IntLit(2)))
	assert.Error(t, err)
}

func TestGenExprPointerArithmeticMatrix(t *testing.T) {
	s := NewState(nil)
	require.NoError(t, s.GenDeclaration(Decl(DeclSpecInt(), InitDecl(Declarator("p", PointerOp()), nil))))

	_, err := s.GenExpr(Bin(BinAdd, Ident("p"), IntLit(1)))
	assert.NoError(t, err)

	_, err = s.GenExpr(Bin(BinSub, Ident("p"), Ident("p")))
	assert.NoError(t, err)

	_, err = s.GenExpr(Bin(BinAdd, Ident("p"), Ident("p")))
	assert.Error(t, err)
}

func TestGenExprSizeofArray(t *testing.T) {
	s := NewState(nil)
	tn := TypeName(DeclSpecInt(), ArrayOp(IntLit(4)))
	v, err := s.GenExpr(SizeofType(tn))
	require.NoError(t, err)
	assert.Contains(t, s.out.String(), "mov rax, 16")
	assert.Equal(t, s.builtin.tSizeT, v.Type)
}

func TestGenExprUnsupportedFormReportsDiagnostic(t *testing.T) {
	s := NewState(nil)
	_, err := s.GenExpr(&MemberNode{A: Ident("x"), Name: "f"})
	assert.Error(t, err)
	assert.True(t, s.diags.HasErrors())
}
