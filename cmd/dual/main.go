// Package main provides the dual number library CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/dual/dual"
	"github.com/born-ml/dual/ops"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Born Dual %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Born Dual - Forward-Mode Automatic Differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Evaluate sin(log(x^2)) and its derivative at x=1")
}

func demo() {
	x := dual.New(1.0, 0)
	r := ops.Sin(ops.Log(ops.Mul(x, x)))

	fmt.Println("f(x) = sin(log(x^2)) at x = 1")
	fmt.Printf("  f(1)  = %v\n", r.Value())
	fmt.Printf("  f'(1) = %v\n", r.DValue(0))
}
