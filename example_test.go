package symts_test

import (
	"fmt"

	"github.com/arloliu/symts"
)

func ExampleEncode() {
	series := []float64{5, 6, 7, -5, -6, -7, 0.25, 0.17, 0.04, -0.04, -0.17, -0.25}

	word, err := symts.Encode(series, 4, 8)
	if err != nil {
		panic(err)
	}
	fmt.Println(word)
	// Output: HAED
}

func ExampleDistance() {
	win, _ := symts.NewWindow(12, 4, 8)
	reference, _ := symts.Parse("HAED", 8)

	_, err := symts.Distance(win, reference)
	fmt.Println(err)

	win.AppendSlice([]float64{5, 6, 7, -5, -6, -7, 0.25, 0.17, 0.04, -0.04, -0.17, -0.25})
	d, _ := symts.Distance(win, reference)
	fmt.Println(d)
	// Output:
	// window is not ready: ####
	// 0
}

func ExampleMarshalWindow() {
	win, _ := symts.NewWindow(8, 2, 4)
	win.AppendSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8})

	data, err := symts.MarshalWindow(win)
	if err != nil {
		panic(err)
	}

	restored, err := symts.UnmarshalWindow(data)
	if err != nil {
		panic(err)
	}
	fmt.Println(restored, restored.Len())
	// Output: AD 8
}
