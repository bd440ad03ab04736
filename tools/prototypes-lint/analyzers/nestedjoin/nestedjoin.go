// Package nestedjoin detects O(n·m) nested-loop joins between two collections.
package nestedjoin

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects nested range loops over two collections whose inner body
// matches elements with ==.
var Analyzer = &analysis.Analyzer{
	Name:     "nestedjoin",
	Doc:      "detects O(n·m) nested-loop joins that should index one side",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		outer, ok := n.(*ast.RangeStmt)
		if !ok {
			return
		}

		outerVar := rangeVar(pass, outer)
		if outerVar == nil {
			return
		}
		outerName := types.ExprString(outer.X)

		ast.Inspect(outer.Body, func(n ast.Node) bool {
			inner, ok := n.(*ast.RangeStmt)
			if !ok {
				return true
			}

			innerName := types.ExprString(inner.X)
			// Same collection is a self-join; walking a field of the
			// outer element is traversal, not a join.
			if innerName == outerName || rootObject(pass, inner.X) == outerVar {
				return true
			}

			innerVar := rangeVar(pass, inner)
			if innerVar == nil {
				return true
			}

			if cmp := findMatch(pass, inner.Body, outerVar, innerVar); cmp != nil {
				pass.Reportf(cmp.Pos(),
					"nested-loop join of %s and %s - index %s with a map (query.IndexBy, query.GroupBy)",
					outerName, innerName, innerName)
			}

			return true
		})
	})

	return nil, nil
}

// rangeVar returns the object of the range value variable, or of the key
// when there is no value.
func rangeVar(pass *analysis.Pass, stmt *ast.RangeStmt) types.Object {
	expr := stmt.Value
	if expr == nil {
		expr = stmt.Key
	}
	ident, ok := expr.(*ast.Ident)
	if !ok || ident.Name == "_" {
		return nil
	}
	return pass.TypesInfo.ObjectOf(ident)
}

// findMatch returns the first == comparison in body with one side rooted at
// each loop variable.
func findMatch(pass *analysis.Pass, body *ast.BlockStmt, outer, inner types.Object) *ast.BinaryExpr {
	var found *ast.BinaryExpr
	ast.Inspect(body, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		bin, ok := n.(*ast.BinaryExpr)
		if !ok || bin.Op != token.EQL {
			return true
		}
		x, y := rootObject(pass, bin.X), rootObject(pass, bin.Y)
		if (x == outer && y == inner) || (x == inner && y == outer) {
			found = bin
			return false
		}
		return true
	})
	return found
}

// rootObject returns the variable an expression like a.B.C or a[i].B starts from.
func rootObject(pass *analysis.Pass, expr ast.Expr) types.Object {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return pass.TypesInfo.ObjectOf(e)
		case *ast.SelectorExpr:
			expr = e.X
		case *ast.IndexExpr:
			expr = e.X
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		default:
			return nil
		}
	}
}
