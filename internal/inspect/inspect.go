// --- syntour/internal/inspect/inspect.go ---

// Package inspect reports which syntax categories a set of Go sources
// exercises, and which variables each function literal captures.
package inspect

import (
	"go/ast"
	"go/token"
	"strings"
)

// Feature is one syntax category the tour demonstrates.
type Feature string

const (
	FeatBindings    Feature = "bindings"
	FeatComposites  Feature = "composites"
	FeatRecords     Feature = "records"
	FeatEnums       Feature = "enums"
	FeatControlFlow Feature = "control-flow"
	FeatNamespaces  Feature = "namespaces"
	FeatPointers    Feature = "pointers"
	FeatClosures    Feature = "closures"
	FeatInterfaces  Feature = "interfaces"
	FeatErrors      Feature = "errors"
	FeatUnsafe      Feature = "unsafe"
	FeatLiterals    Feature = "literals"
	FeatTypes       Feature = "types"
	FeatGenerics    Feature = "generics"
	FeatCollections Feature = "collections"
)

// AllFeatures lists every category the inspector can detect, in report order.
// Macros are absent on purpose: a plain function call has no syntax of its own.
var AllFeatures = []Feature{
	FeatBindings,
	FeatComposites,
	FeatRecords,
	FeatEnums,
	FeatControlFlow,
	FeatNamespaces,
	FeatPointers,
	FeatClosures,
	FeatInterfaces,
	FeatErrors,
	FeatUnsafe,
	FeatLiterals,
	FeatTypes,
	FeatGenerics,
	FeatCollections,
}

// FileReport is the result of inspecting a single file.
type FileReport struct {
	Path     string          `json:"path" yaml:"path"`
	Package  string          `json:"package" yaml:"package"`
	Counts   map[Feature]int `json:"counts" yaml:"counts"`
	Closures []Closure       `json:"closures,omitempty" yaml:"closures,omitempty"`
}

// ── Top-level processor ──────────────────────────────────────────────────────

// InspectFile counts feature occurrences in f and runs capture analysis on
// every top-level declaration.
func InspectFile(fset *token.FileSet, path string, f *ast.File) FileReport {
	r := NewResolver()
	r.PopulateImports(f)

	rep := FileReport{
		Path:    path,
		Package: f.Name.Name,
		Counts:  make(map[Feature]int),
	}

	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			countGenDecl(d, rep.Counts)
		case *ast.FuncDecl:
			countFuncDecl(d, rep.Counts)
		}
		res := analyzeDecl(fset, r.Imports, decl)
		rep.Closures = append(rep.Closures, res.closures...)
		if res.qualifiedCalls > 0 {
			rep.Counts[FeatNamespaces] += res.qualifiedCalls
		}
	}

	ast.Inspect(f, func(n ast.Node) bool {
		countNode(n, rep.Counts)
		return true
	})

	if r.Imported("unsafe") {
		rep.Counts[FeatUnsafe]++
	}
	return rep
}

// ── Declarations ─────────────────────────────────────────────────────────────

func countGenDecl(d *ast.GenDecl, counts map[Feature]int) {
	if d.Tok == token.CONST && usesIota(d) {
		counts[FeatEnums]++
	}
}

func countFuncDecl(d *ast.FuncDecl, counts map[Feature]int) {
	// func (p Point) Draw(...)  →  method set
	if d.Recv != nil {
		counts[FeatInterfaces]++
	}
	if d.Type.TypeParams != nil && len(d.Type.TypeParams.List) > 0 {
		counts[FeatGenerics]++
	}
	if returnsError(d.Type) {
		counts[FeatErrors]++
	}
}

func usesIota(d *ast.GenDecl) bool {
	found := false
	for _, spec := range d.Specs {
		ast.Inspect(spec, func(n ast.Node) bool {
			if ident, ok := n.(*ast.Ident); ok && ident.Name == "iota" {
				found = true
			}
			return !found
		})
	}
	return found
}

func returnsError(ft *ast.FuncType) bool {
	if ft.Results == nil || len(ft.Results.List) == 0 {
		return false
	}
	last := ft.Results.List[len(ft.Results.List)-1].Type
	ident, ok := last.(*ast.Ident)
	return ok && ident.Name == "error"
}

// ── Nodes ────────────────────────────────────────────────────────────────────

func countNode(n ast.Node, counts map[Feature]int) {
	switch e := n.(type) {

	// x := 1, const c = 2, var v int
	case *ast.AssignStmt:
		if e.Tok == token.DEFINE {
			counts[FeatBindings]++
		}
		// v, ok := m[k]  /  v, ok := x.(T)  →  comma-ok optional
		if len(e.Lhs) == 2 && len(e.Rhs) == 1 {
			switch e.Rhs[0].(type) {
			case *ast.IndexExpr, *ast.TypeAssertExpr:
				counts[FeatErrors]++
			}
		}
	case *ast.ValueSpec:
		counts[FeatBindings]++

	// [3]int{...}, []T{...}, s[lo:hi]
	case *ast.CompositeLit:
		if _, ok := e.Type.(*ast.ArrayType); ok {
			counts[FeatComposites]++
		}
	case *ast.SliceExpr:
		counts[FeatComposites]++

	// type T struct / interface / alias / generic
	case *ast.TypeSpec:
		switch e.Type.(type) {
		case *ast.StructType:
			counts[FeatRecords]++
		case *ast.InterfaceType:
			counts[FeatInterfaces]++
		}
		if e.Assign.IsValid() {
			counts[FeatTypes]++
		}
		if e.TypeParams != nil && len(e.TypeParams.List) > 0 {
			counts[FeatGenerics]++
		}

	// if / for / range / switch / break
	case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt, *ast.SwitchStmt,
		*ast.TypeSwitchStmt, *ast.BranchStmt:
		counts[FeatControlFlow]++

	// &x, *p
	case *ast.UnaryExpr:
		if e.Op == token.AND {
			counts[FeatPointers]++
		}
	case *ast.StarExpr:
		counts[FeatPointers]++

	case *ast.FuncLit:
		counts[FeatClosures]++

	// `raw`, 'c'
	case *ast.BasicLit:
		switch {
		case e.Kind == token.STRING && strings.HasPrefix(e.Value, "`"):
			counts[FeatLiterals]++
		case e.Kind == token.CHAR:
			counts[FeatLiterals]++
		}

	case *ast.MapType:
		counts[FeatCollections]++
	}
}
