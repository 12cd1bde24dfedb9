// Package main provides a pointer to the real entry point.
// cachesim simulates a load/store processor and its cache, tracing every
// processor/cache/memory transfer to standard output.
//
// For the full CLI, use: go run ./cmd/cachesim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("cachesim - cache trace simulator")
	fmt.Println("")
	fmt.Println("Usage: cachesim -f <program> -b <block size> -s <sets> -a <associativity>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -f    machine code file to simulate")
	fmt.Println("  -b    block size of the cache, in words")
	fmt.Println("  -s    number of sets in the cache")
	fmt.Println("  -a    associativity of the cache")
	fmt.Println("  -v    print cache statistics to stderr after running")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/cachesim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/cachesim' instead.")
	}
}
