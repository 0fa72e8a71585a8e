// --- syntour/internal/inspect/resolver.go ---

package inspect

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

type SymbolKind int

const (
	KindVar SymbolKind = iota
	KindConst
	KindType
)

type Symbol struct {
	Kind  SymbolKind
	Depth int // function-literal nesting depth at the point of declaration
}

type Scope struct {
	Parent  *Scope
	Symbols map[string]*Symbol
}

type Resolver struct {
	Imports map[string]string // Key: local name (unsafe), Value: path ("unsafe")
	Current *Scope
}

// NewResolver starts at an empty outermost scope. Package-level names are
// never entered: Go rejects a package-level name that collides with an
// import, so only function-local names can shadow one.
func NewResolver() *Resolver {
	return &Resolver{
		Imports: make(map[string]string),
		Current: &Scope{Symbols: make(map[string]*Symbol)},
	}
}

func (r *Resolver) EnterScope() {
	r.Current = &Scope{
		Parent:  r.Current,
		Symbols: make(map[string]*Symbol),
	}
}

func (r *Resolver) ExitScope() {
	if r.Current.Parent != nil {
		r.Current = r.Current.Parent
	}
}

func (r *Resolver) Define(name string, sym *Symbol) {
	if name == "_" {
		return
	}
	r.Current.Symbols[name] = sym
}

func (r *Resolver) Lookup(name string) (*Symbol, bool) {
	curr := r.Current
	for curr != nil {
		if sym, ok := curr.Symbols[name]; ok {
			return sym, true
		}
		curr = curr.Parent
	}
	return nil, false
}

// PopulateImports records every import of f under the name it is referred
// to by in the file body.
func (r *Resolver) PopulateImports(f *ast.File) {
	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.IMPORT {
			continue
		}
		for _, spec := range genDecl.Specs {
			imp, ok := spec.(*ast.ImportSpec)
			if !ok {
				continue
			}
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				continue
			}
			var name string
			if imp.Name != nil {
				name = imp.Name.Name // import g "github.com/..."
			} else {
				name = importName(path)
			}
			if name == "_" || name == "." {
				continue
			}
			r.Imports[name] = path
		}
	}
}

// IsPackage reports whether name refers to an import rather than a local.
func (r *Resolver) IsPackage(name string) bool {
	if _, shadowed := r.Lookup(name); shadowed {
		return false
	}
	_, ok := r.Imports[name]
	return ok
}

// Imported reports whether the file imports path under any name.
func (r *Resolver) Imported(path string) bool {
	for _, p := range r.Imports {
		if p == path {
			return true
		}
	}
	return false
}

// importName guesses the package name from an import path: "fmt" from "fmt",
// "utils" from ".../tour/utils", "yaml" from "gopkg.in/yaml.v3" and "git"
// from ".../go-git/v5".
func importName(path string) string {
	parts := strings.Split(path, "/")
	name := parts[len(parts)-1]
	if len(parts) > 1 && isMajorVersion(name) {
		name = parts[len(parts)-2]
	}
	if i := strings.Index(name, ".v"); i > 0 {
		name = name[:i]
	}
	name = strings.TrimPrefix(name, "go-")
	return strings.ReplaceAll(name, "-", "_")
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	_, err := strconv.Atoi(s[1:])
	return err == nil
}
