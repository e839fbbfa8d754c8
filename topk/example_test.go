package topk_test

import (
	"fmt"

	"github.com/katalvlaran/seqscan/topk"
)

// ExampleLargest picks the three highest readings from a sensor batch.
func ExampleLargest() {
	readings := []int64{41, 7, 98, 54, 23, 77, 98, 12}

	best, err := topk.Largest(readings, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(best)
	// Output:
	// [98 98 77]
}

// ExampleTopK_Offer streams values through a bounded container: memory
// stays O(k) no matter how long the stream runs.
func ExampleTopK_Offer() {
	c, _ := topk.New(2, topk.WithSmallest())
	for v := int64(100); v > 0; v -= 7 {
		c.Offer(v)
	}
	fmt.Println(c.Values())
	// Output:
	// [2 9]
}
