// Package analyzers provides all custom static analyzers for prototypes.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/prototypes/tools/prototypes-lint/analyzers/loopcall"
	"github.com/ersonp/prototypes/tools/prototypes-lint/analyzers/nestedjoin"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopcall.Analyzer,
		nestedjoin.Analyzer,
	}
}
