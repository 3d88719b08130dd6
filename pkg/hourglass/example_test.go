package hourglass_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/sandglass/pkg/hourglass"
)

func Example() {
	// Build a glass, pour in sand, and settle it with the neck pinched. The
	// pinch keeps every grain in the upper bulb.
	glass := hourglass.New(7, 12)
	glass.FillWithSandFromTop(0.375)
	glass.Pinch()

	rng := rand.New(rand.NewPCG(7, 12))
	glass.Settle(rng)

	fmt.Println("top:", glass.CountTopSand())
	fmt.Println("bottom:", glass.CountBottomSand())
	// Output:
	// top: 37
	// bottom: 0
}

func ExampleHourglass_Flip() {
	glass := hourglass.New(7, 12)
	glass.FillWithSandFromTop(0.375)
	glass.Pinch()
	glass.Settle(rand.New(rand.NewPCG(1, 2)))

	// Turning the glass over swaps the bulbs.
	glass.Flip()

	fmt.Println("top:", glass.CountTopSand())
	fmt.Println("bottom:", glass.CountBottomSand())
	// Output:
	// top: 0
	// bottom: 37
}

func ExampleHourglass_TryPlaceSand() {
	glass := hourglass.New(5, 8)

	fmt.Println(glass.TryPlaceSand(2, 1))
	fmt.Println(glass.TryPlaceSand(2, 1))
	fmt.Println(glass.TryPlaceSand(2, 1)) // cell is saturated
	// Output:
	// true
	// true
	// false
}
