package minic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intType() Type {
	return Type{Spec: DeclSpecInt(), Decl: &DeclaratorNode{}}
}

func pointerToIntType() Type {
	return Type{Spec: DeclSpecInt(), Decl: &DeclaratorNode{Ops: []Node{PointerOp()}}}
}

func arrayOfIntType(n int64) Type {
	return Type{Spec: DeclSpecInt(), Decl: &DeclaratorNode{Ops: []Node{ArrayOp(IntLit(n))}}}
}

func TestTypeIsFullyApplied(t *testing.T) {
	it := intType()
	assert.True(t, it.IsFullyApplied())

	pt := pointerToIntType()
	assert.False(t, pt.IsFullyApplied())
}

func TestTypeIsPointer(t *testing.T) {
	pt := pointerToIntType()
	assert.True(t, pt.IsPointer())

	it := intType()
	assert.False(t, it.IsPointer())

	addr := intType()
	require.NoError(t, addr.ApplyAddressOf())
	assert.True(t, addr.IsPointer())
}

func TestTypeApplyDerefOnPointer(t *testing.T) {
	pt := pointerToIntType()
	require.NoError(t, pt.ApplyDeref())
	assert.True(t, pt.IsFullyApplied())
}

func TestTypeApplyDerefOnNonPointerFails(t *testing.T) {
	it := intType()
	assert.Error(t, it.ApplyDeref())
}

func TestTypeApplyAddressOfTwiceFails(t *testing.T) {
	it := intType()
	require.NoError(t, it.ApplyAddressOf())
	assert.Error(t, it.ApplyAddressOf())
}

func TestTypeSizeBuiltins(t *testing.T) {
	cases := []struct {
		name string
		t    Type
		want int
	}{
		{"int", intType(), 4},
		{"char", Type{Spec: DeclSpecChar(), Decl: &DeclaratorNode{}}, 1},
		{"pointer", pointerToIntType(), 8},
		{"array-of-3-int", arrayOfIntType(3), 12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.t.Size()
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestTypeSizeVoidIsZero(t *testing.T) {
	spec := &DeclSpecNode{}
	spec.BuiltinTypes[BTVoid]++
	v := Type{Spec: spec, Decl: &DeclaratorNode{}}
	got, err := v.Size()
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestTypeIsConstPointerQualifier(t *testing.T) {
	ptrOp := &PointerDeclaratorNode{}
	ptrOp.Qualifiers[QualConst]++
	pt := Type{Spec: DeclSpecInt(), Decl: &DeclaratorNode{Ops: []Node{ptrOp}}}
	assert.True(t, pt.IsConst())
}

func TestTypeIsConstAfterAddressOf(t *testing.T) {
	it := intType()
	require.NoError(t, it.ApplyAddressOf())
	assert.True(t, it.IsConst())
}

func TestTypeIsArithmetic(t *testing.T) {
	assert.True(t, intType().IsArithmetic())
	assert.False(t, pointerToIntType().IsArithmetic())
}

func TestConstEvalRejectsNonLiteral(t *testing.T) {
	_, err := constEval(Ident("n"))
	assert.Error(t, err)
}
