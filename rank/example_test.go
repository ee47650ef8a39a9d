package rank_test

import (
	"fmt"

	"github.com/katalvlaran/bykey/aggregate"
	"github.com/katalvlaran/bykey/rank"
)

// ExampleTopK ranks the most frequent elements of a sequence: count-by
// builds the association, top-k orders and truncates it.
func ExampleTopK() {
	nums := []int{1, 1, 1, 2, 2, 3}

	counts, err := aggregate.CountBy(nums, func(n int) int { return n })
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	top, err := rank.TopK(counts, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, p := range top {
		fmt.Printf("%d appears %d times\n", p.Key, p.Value)
	}
	// Output:
	// 1 appears 3 times
	// 2 appears 2 times
}

// ExampleBottomK selects the rarest words; equal counts order by
// ascending word, so the output is fully deterministic.
func ExampleBottomK() {
	counts := map[string]int{"the": 12, "of": 9, "zebra": 1, "quark": 1}

	bottom, err := rank.BottomK(counts, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, p := range bottom {
		fmt.Printf("%s=%d\n", p.Key, p.Value)
	}
	// Output:
	// quark=1
	// zebra=1
	// of=9
}
