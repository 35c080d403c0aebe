// Package imports classifies and reorders top-level import statements
// into the standard stdlib / third-party / local grouping.
package imports

import (
	"os"
	"path/filepath"
	"strings"
)

// Group is an import's classification bucket.
type Group uint8

const (
	GroupStdlib Group = iota
	GroupThirdParty
	GroupLocal
)

func (g Group) String() string {
	switch g {
	case GroupStdlib:
		return "stdlib"
	case GroupThirdParty:
		return "thirdparty"
	default:
		return "local"
	}
}

// Resolver locates where a root module would be loaded from. The
// second return is false when the resolver has no answer and
// classification should fall through.
type Resolver interface {
	Resolve(root string) (Group, bool)
}

// StaticResolver is a fixed-mapping Resolver for tests and embedders.
type StaticResolver map[string]Group

func (r StaticResolver) Resolve(root string) (Group, bool) {
	g, ok := r[root]
	return g, ok
}

// Classifier groups import root names. The name sets and the resolver
// are explicit dependencies so behavior is fixed at construction, not
// pulled from hidden globals.
type Classifier struct {
	Stdlib   map[string]bool
	Builtins map[string]bool
	Resolver Resolver // may be nil
}

// NewClassifier builds a Classifier with the bundled stdlib and
// builtin name sets.
func NewClassifier(resolver Resolver) *Classifier {
	return &Classifier{
		Stdlib:   stdlibNames,
		Builtins: builtinNames,
		Resolver: resolver,
	}
}

// Classify buckets a dotted module name. Relative names are always
// local; known stdlib and builtin roots are stdlib; otherwise the
// resolver decides, defaulting to local.
func (c *Classifier) Classify(name string) Group {
	if strings.HasPrefix(name, ".") {
		return GroupLocal
	}
	root, _, _ := strings.Cut(name, ".")
	if c.Stdlib[root] || c.Builtins[root] {
		return GroupStdlib
	}
	if c.Resolver != nil {
		if g, ok := c.Resolver.Resolve(root); ok {
			return g
		}
	}
	return GroupLocal
}

// EnvResolver inspects directories on disk: a root found under a
// package-installation directory is third-party, one under an
// interpreter-bundled directory is stdlib.
type EnvResolver struct {
	SitePackages []string
	StdlibDirs   []string
}

// DetectEnvResolver splits PYTHONPATH into installation and bundled
// directories by path shape.
func DetectEnvResolver() *EnvResolver {
	r := &EnvResolver{}
	for _, dir := range filepath.SplitList(os.Getenv("PYTHONPATH")) {
		if dir == "" {
			continue
		}
		if strings.Contains(dir, "site-packages") || strings.Contains(dir, "dist-packages") {
			r.SitePackages = append(r.SitePackages, dir)
		} else {
			r.StdlibDirs = append(r.StdlibDirs, dir)
		}
	}
	return r
}

func (r *EnvResolver) Resolve(root string) (Group, bool) {
	if containsModule(r.SitePackages, root) {
		return GroupThirdParty, true
	}
	if containsModule(r.StdlibDirs, root) {
		return GroupStdlib, true
	}
	return GroupLocal, false
}

func containsModule(dirs []string, root string) bool {
	for _, dir := range dirs {
		if _, err := os.Stat(filepath.Join(dir, root+".py")); err == nil {
			return true
		}
		if _, err := os.Stat(filepath.Join(dir, root, "__init__.py")); err == nil {
			return true
		}
	}
	return false
}
