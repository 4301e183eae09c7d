package matrix_test

import (
	"fmt"

	"github.com/kintree/kintree/matrix"
)

// ExampleNew builds a three-entity matrix and queries it.
//
// Scenario:
//
//	Three kinases with pairwise distances
//	  d(EGFR,ABL1) = 0.3
//	  d(EGFR,BRAF) = 0.7
//	  d(ABL1,BRAF) = 0.6
func ExampleNew() {
	labels := []string{"EGFR", "ABL1", "BRAF"}
	cells := [][]float64{
		{0, 0.3, 0.7},
		{0.3, 0, 0.6},
		{0.7, 0.6, 0},
	}

	d, err := matrix.New(labels, cells)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, _ := d.At(0, 2)
	fmt.Printf("n=%d d(EGFR,BRAF)=%.1f mean=%.4f\n", d.N(), v, d.Mean())
	// Output:
	// n=3 d(EGFR,BRAF)=0.7 mean=0.5333
}
