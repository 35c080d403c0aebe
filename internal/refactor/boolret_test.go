package refactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyBooleanReturns(t *testing.T) {
	src := "def f(a, b):\n    if a > b:\n        return True\n    else:\n        return False\n"
	got, changed, err := SimplifyBooleanReturns(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "def f(a, b):\n    return bool(a > b)\n", got)
}

func TestSimplifyBooleanReturnsInverted(t *testing.T) {
	src := "def f(x):\n    if x:\n        return False\n    else:\n        return True\n"
	got, changed, err := SimplifyBooleanReturns(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "def f(x):\n    return not bool(x)\n", got)
}

func TestSimplifyBooleanReturnsLeavesValueReturns(t *testing.T) {
	src := "def f(x):\n    if x:\n        return 1\n    else:\n        return False\n"
	got, changed, err := SimplifyBooleanReturns(src)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}

func TestSimplifyBooleanReturnsLeavesSameLiteral(t *testing.T) {
	src := "def f(x):\n    if x:\n        return True\n    else:\n        return True\n"
	got, changed, err := SimplifyBooleanReturns(src)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}

func TestSimplifyBooleanReturnsLeavesElif(t *testing.T) {
	src := "def f(x, y):\n    if x:\n        return True\n    elif y:\n        return True\n    else:\n        return False\n"
	got, changed, err := SimplifyBooleanReturns(src)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}

func TestSimplifyBooleanReturnsLeavesExtraStatements(t *testing.T) {
	src := "def f(x):\n    if x:\n        log(x)\n        return True\n    else:\n        return False\n"
	got, changed, err := SimplifyBooleanReturns(src)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}

func TestSimplifyBooleanReturnsMultipleSites(t *testing.T) {
	src := "def f(a):\n    if a:\n        return True\n    else:\n        return False\n\ndef g(b):\n    if b:\n        return False\n    else:\n        return True\n"
	want := "def f(a):\n    return bool(a)\n\ndef g(b):\n    return not bool(b)\n"
	got, changed, err := SimplifyBooleanReturns(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, want, got)
}

func TestSimplifyBooleanReturnsGate(t *testing.T) {
	src := "if (:\n    return True\n"
	got, changed, err := SimplifyBooleanReturns(src)
	require.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}
