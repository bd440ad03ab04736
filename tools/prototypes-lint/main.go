// prototypes-lint is a custom static analyzer for hand-rolled dataset queries.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/prototypes/tools/prototypes-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
