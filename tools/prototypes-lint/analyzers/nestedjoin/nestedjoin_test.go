package nestedjoin_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/ersonp/prototypes/tools/prototypes-lint/analyzers/nestedjoin"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, nestedjoin.Analyzer, "a")
}
