package imports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBuckets(t *testing.T) {
	c := NewClassifier(StaticResolver{"requests": GroupThirdParty})

	assert.Equal(t, GroupStdlib, c.Classify("os"))
	assert.Equal(t, GroupStdlib, c.Classify("os.path"))
	assert.Equal(t, GroupStdlib, c.Classify("collections.abc"))
	assert.Equal(t, GroupThirdParty, c.Classify("requests"))
	assert.Equal(t, GroupThirdParty, c.Classify("requests.adapters"))
	assert.Equal(t, GroupLocal, c.Classify("myproject.util"))
	assert.Equal(t, GroupLocal, c.Classify(".sibling"))
	assert.Equal(t, GroupLocal, c.Classify("..pkg.mod"))
}

func TestClassifyBuiltinShadow(t *testing.T) {
	c := NewClassifier(nil)
	assert.Equal(t, GroupStdlib, c.Classify("print"))
}

func TestEnvResolver(t *testing.T) {
	site := filepath.Join(t.TempDir(), "site-packages")
	require.NoError(t, os.MkdirAll(filepath.Join(site, "numpy"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(site, "numpy", "__init__.py"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(site, "six.py"), nil, 0o644))

	r := &EnvResolver{SitePackages: []string{site}}
	g, ok := r.Resolve("numpy")
	require.True(t, ok)
	assert.Equal(t, GroupThirdParty, g)

	g, ok = r.Resolve("six")
	require.True(t, ok)
	assert.Equal(t, GroupThirdParty, g)

	_, ok = r.Resolve("missing")
	assert.False(t, ok)
}

func TestDetectEnvResolverSplitsByShape(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("PYTHONPATH", "/venv/lib/site-packages"+sep+"/usr/lib/python3.12")
	r := DetectEnvResolver()
	assert.Equal(t, []string{"/venv/lib/site-packages"}, r.SitePackages)
	assert.Equal(t, []string{"/usr/lib/python3.12"}, r.StdlibDirs)
}

func TestGroupString(t *testing.T) {
	assert.Equal(t, "stdlib", GroupStdlib.String())
	assert.Equal(t, "thirdparty", GroupThirdParty.String())
	assert.Equal(t, "local", GroupLocal.String())
}
