package minic

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// assertGoldenAssembly fails with a unified diff (rendered through
// go-difflib, the same package testify itself reaches for when values
// mismatch) rather than a raw string dump, so a mismatch is readable
// at a glance.
func assertGoldenAssembly(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "golden",
		ToFile:   "generated",
		Context:  3,
	})
	require.NoError(t, err)
	t.Fatalf("generated assembly does not match golden:\n%s", diff)
}

const simpleAssignGolden = `global main
section .text
extern printf
extern scanf
extern malloc
extern free
extern getchar
main:
push rbp
mov rbp, rsp
; alloced ` + "`x`" + ` on stack at -8
mov rax, 5
mov dword [rbp-16], eax ; store
xor rax, rax
mov eax, dword [rbp-16] ; read
mov dword [rbp-8], eax ; store
mov rsp, rbp
pop rbp
mov rax, 0
ret

section .rodata
`

func TestGoldenSimpleAssign(t *testing.T) {
	asm, diags := Generate(SimpleAssignFixture(), nil)
	require.False(t, diags.HasErrors())
	assertGoldenAssembly(t, simpleAssignGolden, asm)
}
