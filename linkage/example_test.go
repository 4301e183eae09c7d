package linkage_test

import (
	"fmt"

	"github.com/kintree/kintree/linkage"
	"github.com/kintree/kintree/matrix"
)

// ExampleRun clusters four entities forming two tight pairs.
//
// Scenario:
//
//	A─B and C─D sit at distance 1 inside each pair and 4 across,
//	so every criterion merges the pairs first and joins them last.
func ExampleRun() {
	d, err := matrix.New(
		[]string{"A", "B", "C", "D"},
		[][]float64{
			{0, 1, 4, 4},
			{1, 0, 4, 4},
			{4, 4, 0, 1},
			{4, 4, 1, 0},
		},
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	history, err := linkage.Run(d, linkage.Average)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, m := range history {
		fmt.Printf("merge %d+%d -> %d at %.2f\n", m.A, m.B, m.ID, m.Height)
	}
	// Output:
	// merge 0+1 -> 4 at 1.00
	// merge 2+3 -> 5 at 1.00
	// merge 4+5 -> 6 at 4.00
}

// ExampleParseMethod resolves a user-supplied criterion name.
func ExampleParseMethod() {
	m, err := linkage.ParseMethod("centroid")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(m)
	// Output:
	// centroid
}
