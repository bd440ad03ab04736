// Package loopcall detects dataset loads inside loops.
package loopcall

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects dataset loads inside loops that should happen once.
var Analyzer = &analysis.Analyzer{
	Name:     "loopcall",
	Doc:      "detects dataset loads inside loops that should happen once",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// loadingMethods are method names that read every dataset file.
var loadingMethods = map[string]string{
	// DatasetSource interface
	"Load": "load the catalog once before the loop",
	// PromptHandler, one catalog load per call
	"Handle": "use HandleMany or HandleAll",
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			// Nested loops are visited by Preorder on their own.
			switch n.(type) {
			case *ast.RangeStmt, *ast.ForStmt, *ast.FuncLit:
				return false
			}

			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			methodName := sel.Sel.Name
			if hint, ok := loadingMethods[methodName]; ok {
				pass.Reportf(call.Pos(),
					"repeated load: %s called inside loop - %s",
					methodName, hint)
			}

			return true
		})
	})

	return nil, nil
}
