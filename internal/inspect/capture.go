// --- syntour/internal/inspect/capture.go ---

package inspect

import (
	"go/ast"
	"go/token"
	"slices"
)

// ── Capture Analysis ─────────────────────────────────────────────────────────
//
// For every function literal we answer: "which variables of an enclosing
// function does this literal reach out to?"
//
// A name is CAPTURED by a literal if it is:
//   1. a variable (not a const or type)
//   2. declared in an enclosing function, outside the literal
//   3. referenced anywhere inside the literal body
//
// Package-level names are never captures; they are plain globals.

// Closure is one function literal and the outer variables it captures.
type Closure struct {
	Pos      string   `json:"pos" yaml:"pos"`
	Func     string   `json:"func" yaml:"func"`
	Captures []string `json:"captures" yaml:"captures"`
}

// CaptureFree reports whether the literal references no outer variables.
func (c Closure) CaptureFree() bool {
	return len(c.Captures) == 0
}

type litFrame struct {
	pos      token.Pos
	depth    int
	captures map[string]bool
}

type foundClosure struct {
	pos token.Pos
	Closure
}

type captureState struct {
	fset      *token.FileSet
	r         *Resolver
	funcName  string
	lits      []*litFrame
	found     []foundClosure
	qualified int // pkg.Func(...) calls whose pkg is not shadowed
}

// declResult is everything one scope-aware walk of a declaration yields.
type declResult struct {
	closures       []Closure
	qualifiedCalls int
}

// AnalyzeClosures runs capture analysis on one top-level declaration and
// returns its function literals in source order.
func AnalyzeClosures(fset *token.FileSet, decl ast.Decl) []Closure {
	return analyzeDecl(fset, nil, decl).closures
}

// analyzeDecl walks decl with full scope tracking. imports maps the file's
// import names to paths so qualified calls can be told apart from method
// calls on locals; nil means no imports.
func analyzeDecl(fset *token.FileSet, imports map[string]string, decl ast.Decl) declResult {
	c := &captureState{fset: fset, r: NewResolver()}
	if imports != nil {
		c.r.Imports = imports
	}

	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Body == nil {
			return declResult{}
		}
		c.funcName = d.Name.Name
		c.r.EnterScope()
		c.defineFields(d.Recv)
		c.defineFields(d.Type.Params)
		c.defineFields(d.Type.Results)
		c.walkStmts(d.Body.List)
		c.r.ExitScope()

	// var handler = func() { ... } at package level
	case *ast.GenDecl:
		if d.Tok != token.VAR {
			return declResult{}
		}
		for _, spec := range d.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			if len(vs.Names) > 0 {
				c.funcName = vs.Names[0].Name
			}
			for _, v := range vs.Values {
				c.walk(v)
			}
		}
	}

	// Inner literals finish first; report them in source order instead.
	slices.SortFunc(c.found, func(a, b foundClosure) int {
		return int(a.pos) - int(b.pos)
	})
	res := declResult{qualifiedCalls: c.qualified}
	for _, f := range c.found {
		res.closures = append(res.closures, f.Closure)
	}
	return res
}

func (c *captureState) depth() int {
	return len(c.lits)
}

func (c *captureState) define(ident *ast.Ident, kind SymbolKind) {
	if ident == nil {
		return
	}
	c.r.Define(ident.Name, &Symbol{Kind: kind, Depth: c.depth()})
}

// keyIsReference reports whether a composite-literal key is an expression
// rather than a struct field name.
func (c *captureState) keyIsReference(typ, key ast.Expr) bool {
	ident, ok := key.(*ast.Ident)
	if !ok {
		return true
	}
	switch typ.(type) {
	case *ast.MapType, *ast.ArrayType:
		return true
	case nil:
		// Elided type inside an outer literal: a map key or a field name.
		// Without type information, a name bound to a local variable wins.
		sym, found := c.r.Lookup(ident.Name)
		return found && sym.Kind == KindVar
	}
	return false
}

func (c *captureState) defineFields(fl *ast.FieldList) {
	if fl == nil {
		return
	}
	for _, field := range fl.List {
		for _, name := range field.Names {
			c.define(name, KindVar)
		}
	}
}

// use resolves a referenced name and marks it captured by every literal
// nested deeper than its declaration.
func (c *captureState) use(ident *ast.Ident) {
	sym, ok := c.r.Lookup(ident.Name)
	if !ok || sym.Kind != KindVar {
		return
	}
	for _, lit := range c.lits {
		if lit.depth > sym.Depth {
			lit.captures[ident.Name] = true
		}
	}
}

func (c *captureState) walkStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.walk(s)
	}
}

// walk visits n, opening and closing scopes the way the Go spec does for
// blocks, if/for/switch headers and function literals.
func (c *captureState) walk(n ast.Node) {
	if n == nil {
		return
	}
	switch n := n.(type) {

	// func(a, b int) int { ... }  →  new literal frame
	case *ast.FuncLit:
		c.r.EnterScope()
		c.lits = append(c.lits, &litFrame{
			pos:      n.Pos(),
			depth:    c.depth() + 1,
			captures: make(map[string]bool),
		})
		c.defineFields(n.Type.Params)
		c.defineFields(n.Type.Results)
		c.walkStmts(n.Body.List)

		frame := c.lits[len(c.lits)-1]
		c.lits = c.lits[:len(c.lits)-1]
		c.r.ExitScope()

		captures := make([]string, 0, len(frame.captures))
		for name := range frame.captures {
			captures = append(captures, name)
		}
		slices.Sort(captures)
		c.found = append(c.found, foundClosure{
			pos: frame.pos,
			Closure: Closure{
				Pos:      c.fset.Position(frame.pos).String(),
				Func:     c.funcName,
				Captures: captures,
			},
		})

	case *ast.BlockStmt:
		c.r.EnterScope()
		c.walkStmts(n.List)
		c.r.ExitScope()

	// x := expr  →  RHS is evaluated before x exists
	case *ast.AssignStmt:
		for _, rhs := range n.Rhs {
			c.walk(rhs)
		}
		for _, lhs := range n.Lhs {
			if ident, ok := lhs.(*ast.Ident); ok && n.Tok == token.DEFINE {
				if _, exists := c.r.Current.Symbols[ident.Name]; !exists {
					c.define(ident, KindVar)
				}
				continue
			}
			c.walk(lhs)
		}

	case *ast.DeclStmt:
		gd, ok := n.Decl.(*ast.GenDecl)
		if !ok {
			return
		}
		for _, spec := range gd.Specs {
			switch s := spec.(type) {
			case *ast.ValueSpec:
				for _, v := range s.Values {
					c.walk(v)
				}
				kind := KindVar
				if gd.Tok == token.CONST {
					kind = KindConst
				}
				for _, name := range s.Names {
					c.define(name, kind)
				}
			case *ast.TypeSpec:
				c.define(s.Name, KindType)
			}
		}

	case *ast.IfStmt:
		c.r.EnterScope()
		c.walk(n.Init)
		c.walk(n.Cond)
		c.walk(n.Body)
		c.walk(n.Else)
		c.r.ExitScope()

	case *ast.ForStmt:
		c.r.EnterScope()
		c.walk(n.Init)
		c.walk(n.Cond)
		c.walk(n.Post)
		c.walk(n.Body)
		c.r.ExitScope()

	case *ast.RangeStmt:
		c.walk(n.X)
		c.r.EnterScope()
		if n.Tok == token.DEFINE {
			if ident, ok := n.Key.(*ast.Ident); ok {
				c.define(ident, KindVar)
			}
			if ident, ok := n.Value.(*ast.Ident); ok {
				c.define(ident, KindVar)
			}
		} else {
			c.walk(n.Key)
			c.walk(n.Value)
		}
		c.walk(n.Body)
		c.r.ExitScope()

	case *ast.SwitchStmt:
		c.r.EnterScope()
		c.walk(n.Init)
		c.walk(n.Tag)
		c.walk(n.Body)
		c.r.ExitScope()

	case *ast.TypeSwitchStmt:
		c.r.EnterScope()
		c.walk(n.Init)
		c.walk(n.Assign)
		c.walk(n.Body)
		c.r.ExitScope()

	case *ast.CaseClause:
		c.r.EnterScope()
		for _, e := range n.List {
			c.walk(e)
		}
		c.walkStmts(n.Body)
		c.r.ExitScope()

	// x.Field  →  only x can be a variable reference
	case *ast.SelectorExpr:
		c.walk(n.X)

	// pkg.Func(...)  →  qualified call, unless pkg is a shadowing local
	case *ast.CallExpr:
		if sel, ok := n.Fun.(*ast.SelectorExpr); ok {
			if pkg, ok := sel.X.(*ast.Ident); ok && c.r.IsPackage(pkg.Name) {
				c.qualified++
			}
		}
		c.walk(n.Fun)
		for _, arg := range n.Args {
			c.walk(arg)
		}

	// T{Field: v} names a field; map[K]V{k: v} references k
	case *ast.CompositeLit:
		for _, elt := range n.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				c.walk(elt)
				continue
			}
			if c.keyIsReference(n.Type, kv.Key) {
				c.walk(kv.Key)
			}
			c.walk(kv.Value)
		}

	case *ast.LabeledStmt:
		c.walk(n.Stmt)

	case *ast.BranchStmt:
		// labels are not variables

	case *ast.Ident:
		c.use(n)

	default:
		ast.Inspect(n, func(child ast.Node) bool {
			if child == n {
				return true
			}
			c.walk(child)
			return false
		})
	}
}
