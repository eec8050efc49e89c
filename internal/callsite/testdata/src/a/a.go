package a

import "fmt"

func add(a, b int) int { return a + b }

func report(x, y int, name string) {
	fmt.Printf("value is %d and %s\n", x, name)
	fmt.Printf("%d items, cost %d\n", x) // want `Printf: 2 placeholders vs 1 arguments`
	fmt.Printf("sum %d\n", add(x, y))
	fmt.Printf("pair %d %d\n",
		x, y)
	fmt.Printf("%d of %d\n", // want `Printf: 2 placeholders vs 3 arguments`
		x, y, x)
	fmt.Printf("no placeholders\n")
}
