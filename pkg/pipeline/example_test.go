package pipeline_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/omeganet/pkg/pipeline"
)

func ExampleRunner_Evaluate() {
	runner := pipeline.NewRunner(nil)
	res, _ := runner.Evaluate(context.Background(), "(0 1)")
	fmt.Print(res.Report.String())
	// Output:
	// Permutation: (0 1)
	// Status: NON-BLOCKING
	// Minimum Cycles: 1
	// Cycle 1:
	//   Transmissions: 0->1, 1->0
	//   Stage 0: 0 0 - -
	//   Stage 1: 0 - 0 -
	//   Stage 2: 1 - - -
}
