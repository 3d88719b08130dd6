package timerange_test

import (
	"fmt"
	"time"

	"github.com/matzehuels/sandglass/pkg/timerange"
)

func ExampleParseSpan() {
	d, err := timerange.ParseSpan("1m30s")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(d)
	// Output: 1m30s
}

func ExampleResolve() {
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	length := 90 * time.Minute

	r, err := timerange.Resolve(nil, nil, &length, now)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("end:", r.End().Format("15:04"))
	fmt.Printf("halfway: %.2f\n", r.Progress(now.Add(45*time.Minute)))
	// Output:
	// end: 13:30
	// halfway: 0.50
}
