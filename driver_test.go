package minic

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateEmitsPrologueOnce checks that every fixture emits
// exactly one `global main` line and at most one `main:` label.
func TestGenerateEmitsPrologueOnce(t *testing.T) {
	for name, tu := range Fixtures {
		t.Run(name, func(t *testing.T) {
			asm, _ := Generate(tu, nil)
			lines := strings.Split(asm, "\n")
			globalCount, mainLabelCount := 0, 0
			for _, l := range lines {
				if l == "global main" {
					globalCount++
				}
				if l == "main:" {
					mainLabelCount++
				}
			}
			assert.Equal(t, 1, globalCount)
			assert.LessOrEqual(t, mainLabelCount, 1)
		})
	}
}

// TestGenerateCallAlignment checks that a sub rsp immediately precedes
// each call and leaves rsp 16-byte aligned. Locals never move rsp, so
// rsp equals the aligned rbp before the sub and k = (-sp)+(16+sp%16)
// must satisfy k ≡ 0 (mod 16).
func TestGenerateCallAlignment(t *testing.T) {
	asm, diags := Generate(CallConventionFixture(), nil)
	require.False(t, diags.HasErrors())

	subRe := regexp.MustCompile(`sub rsp, (-?\d+)`)
	callRe := regexp.MustCompile(`^call `)
	lines := strings.Split(asm, "\n")
	found := false
	for i, l := range lines {
		if callRe.MatchString(l) {
			require.Greater(t, i, 0)
			m := subRe.FindStringSubmatch(lines[i-1])
			require.NotNil(t, m, "expected sub rsp immediately before call, got %q", lines[i-1])
			k, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			assert.Equal(t, 0, k%16, "sub rsp, %d leaves rsp misaligned at the call", k)
			found = true
		}
	}
	assert.True(t, found, "expected at least one call instruction")
}

// TestGenerateStringPoolRoundTrip checks that each string literal gets
// exactly one rodata entry and exactly one load site.
func TestGenerateStringPoolRoundTrip(t *testing.T) {
	tu := TU(FuncDef(DeclSpecInt(), "main", Comp(
		ExprStmt(StringLit("hello")),
		ExprStmt(StringLit("world")),
	)))
	asm, diags := Generate(tu, nil)
	require.False(t, diags.HasErrors())

	assert.Equal(t, 1, strings.Count(asm, "mov rax, s0"))
	assert.Equal(t, 1, strings.Count(asm, "mov rax, s1"))
	assert.Contains(t, asm, `s0: db "hello", 0`)
	assert.Contains(t, asm, `s1: db "world", 0`)
}

// TestGenerateLabelsMonotonic checks label numbering on the while-loop
// fixture, which allocates exactly two labels.
func TestGenerateLabelsMonotonic(t *testing.T) {
	asm, diags := Generate(WhileLoopFixture(), nil)
	require.False(t, diags.HasErrors())
	assert.Equal(t, 1, strings.Count(asm, "label_0:"))
	assert.Equal(t, 1, strings.Count(asm, "label_1:"))
	assert.Less(t, strings.Index(asm, "label_0:"), strings.Index(asm, "label_1:"))
}

// TestGenerateUndefinedIdentNonZeroStatus checks that an undefined
// identifier is reported as a diagnostic error.
func TestGenerateUndefinedIdentNonZeroStatus(t *testing.T) {
	_, diags := Generate(UndefinedIdentFixture(), nil)
	assert.True(t, diags.HasErrors())
	found := false
	for _, it := range diags.Items() {
		if strings.Contains(it.Message, "undefined identifier") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerateAddressOfLiteralNonZeroStatus(t *testing.T) {
	_, diags := Generate(AddressOfLiteralFixture(), nil)
	assert.True(t, diags.HasErrors())
	found := false
	for _, it := range diags.Items() {
		if strings.Contains(it.Message, "can't take address of non-lvalue") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerateRodataSectionPresent(t *testing.T) {
	asm, _ := Generate(SimpleAssignFixture(), nil)
	assert.Contains(t, asm, "section .rodata")
}
