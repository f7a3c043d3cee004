package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/plsviz/matrix"
)

// ExampleColumn extracts one latent component from a loading matrix.
func ExampleColumn() {
	loadings, err := matrix.NewDenseFrom([][]float64{
		{0.10, 0.20, 0.30},
		{-0.40, 0.50, 0.60},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	second, _ := matrix.Column(loadings, 1)
	fmt.Println(second)

	_, err = matrix.Column(loadings, 5)
	fmt.Println(err)
	// Output:
	// [0.2 0.5]
	// Column: ValidateColIndex(5 of 3): matrix: index out of range
}

// ExampleR2Score scores predictions against observations.
func ExampleR2Score() {
	y, _ := matrix.NewDenseFrom([][]float64{{1}, {2}, {3}, {4}})
	yHat, _ := matrix.NewDenseFrom([][]float64{{1.1}, {1.9}, {3.2}, {3.8}})
	score, _ := matrix.R2Score(y, yHat)
	fmt.Printf("R² = %.3f\n", score)
	// Output:
	// R² = 0.980
}
