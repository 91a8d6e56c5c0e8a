package minic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymTabFindIdentUnknown(t *testing.T) {
	st := newSymTab()
	_, err := st.FindIdent("missing")
	assert.Error(t, err)
}

func TestSymTabDeclareThenLookup(t *testing.T) {
	st := newSymTab()
	ty := intType()
	st["x"] = &Decl{Type: ty, Size: 8, Loc: -8}

	v, err := st.FindIdent("x")
	require.NoError(t, err)
	assert.Equal(t, int64(-8), v.Base)
	assert.True(t, v.Lvalue)
	assert.Equal(t, 0, v.DerefN)
}

func TestSymTabRedeclareOverwrites(t *testing.T) {
	st := newSymTab()
	st["x"] = &Decl{Type: intType(), Size: 8, Loc: -8}
	st["x"] = &Decl{Type: intType(), Size: 8, Loc: -16}

	v, err := st.FindIdent("x")
	require.NoError(t, err)
	assert.Equal(t, int64(-16), v.Base)
}
