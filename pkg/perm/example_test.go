package perm_test

import (
	"fmt"

	"github.com/matzehuels/omeganet/pkg/perm"
)

func ExampleParse() {
	p, _ := perm.Parse("(7 0 6 5 2) (4 3) (1)")
	fmt.Println(p)
	// Output: (0 6 5 2 7) (3 4)
}

func ExamplePermutation_Transfers() {
	p, _ := perm.Parse("(0 1)")
	for _, t := range p.Transfers() {
		fmt.Println(t)
	}
	// Output:
	// 0->1
	// 1->0
}
