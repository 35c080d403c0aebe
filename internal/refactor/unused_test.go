package refactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveUnusedImportsDropsWholeLine(t *testing.T) {
	src := "import os\nimport sys\nprint(sys.argv)\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "import sys\nprint(sys.argv)\n", got)
}

func TestRemoveUnusedImportsFiltersClauses(t *testing.T) {
	src := "import os, sys, json\nprint(json.dumps(sys.argv))\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "import sys, json\nprint(json.dumps(sys.argv))\n", got)
}

func TestRemoveUnusedImportsAliasBinding(t *testing.T) {
	src := "import numpy as np\nimport pandas as pd\nx = np.zeros(3)\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "import numpy as np\nx = np.zeros(3)\n", got)
}

func TestRemoveUnusedImportsFromForm(t *testing.T) {
	src := "from os.path import join, split\np = join('a', 'b')\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "from os.path import join\np = join('a', 'b')\n", got)
}

func TestRemoveUnusedImportsDottedModuleBindsRoot(t *testing.T) {
	src := "import os.path\nprint(os.sep)\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}

func TestRemoveUnusedImportsKeepsFuture(t *testing.T) {
	src := "from __future__ import annotations\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}

func TestRemoveUnusedImportsKeepsStar(t *testing.T) {
	src := "from os.path import *\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}

func TestRemoveUnusedImportsKeepsMultiLine(t *testing.T) {
	src := "from pkg import (\n    alpha,\n    beta,\n)\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}

func TestRemoveUnusedImportsAttributeIsNotUse(t *testing.T) {
	// obj.json is an attribute selector, not a reference to the module
	src := "import json\nx = obj.json\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "x = obj.json\n", got)
}

func TestRemoveUnusedImportsPreservesComment(t *testing.T) {
	src := "import os, sys  # keep me\nprint(sys.path)\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "import sys  # keep me\nprint(sys.path)\n", got)
}

func TestRemoveUnusedImportsSoleStatementBecomesPass(t *testing.T) {
	src := "def f():\n    import math\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "def f():\n    pass\n", got)
}

func TestRemoveUnusedImportsGate(t *testing.T) {
	src := "import os\ndef f(:\n"
	got, changed, err := RemoveUnusedImports(src)
	require.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, src, got)
}

func TestRemoveUnusedImportsFunctionLocal(t *testing.T) {
	src := "def f():\n    import math\n    return 1\n"
	got, changed, err := RemoveUnusedImports(src)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "def f():\n    return 1\n", got)
}
