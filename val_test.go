package minic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValPushNewAllocatesAndStores(t *testing.T) {
	s := NewState(nil)
	v, err := s.ValPushNew(s.builtin.tInt, 0)
	require.NoError(t, err)
	assert.Equal(t, -8, s.sp)
	assert.Equal(t, int64(-8), v.Base)
	assert.False(t, v.Lvalue)
	assert.Contains(t, s.out.String(), "mov dword [rbp-8], eax")
}

func TestValReadZeroExtendsNarrowSizes(t *testing.T) {
	s := NewState(nil)
	v := Val{DerefN: 0, Base: -1, Lvalue: true, Type: s.builtin.tChar}
	require.NoError(t, s.ValRead(&v, 0))
	out := s.out.String()
	assert.True(t, strings.Contains(out, "xor rax, rax"))
	assert.True(t, strings.Contains(out, "mov al, byte [rbp-1]"))
}

func TestValReadChasesIndirection(t *testing.T) {
	s := NewState(nil)
	v := Val{DerefN: 2, Base: -16, Lvalue: true, Type: s.builtin.tInt}
	require.NoError(t, s.ValRead(&v, 0))
	out := s.out.String()
	assert.Contains(t, out, "mov rcx, qword [rbp-16]")
	assert.Contains(t, out, "mov rcx, [rcx]")
	assert.Contains(t, out, "mov eax, dword [rcx]")
}

func TestModifiableLvalue(t *testing.T) {
	s := NewState(nil)
	v := Val{Lvalue: true, Type: s.builtin.tInt}
	assert.True(t, v.ModifiableLvalue())

	constSpec := *DeclSpecInt()
	constSpec.Qualifiers[QualConst]++
	v2 := Val{Lvalue: true, Type: Type{Spec: &constSpec, Decl: &DeclaratorNode{}}}
	assert.False(t, v2.ModifiableLvalue())
}
