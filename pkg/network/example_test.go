package network_test

import (
	"fmt"

	"github.com/matzehuels/omeganet/pkg/network"
)

func ExampleRoute() {
	for _, hop := range network.Route(0, 6) {
		fmt.Printf("stage %d: switch %d %s\n", hop.Stage, hop.Switch, hop.Setting)
	}
	// Output:
	// stage 0: switch 0 Cross
	// stage 1: switch 1 Cross
	// stage 2: switch 3 Straight
}
