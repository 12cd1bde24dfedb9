// Command cachesim runs a machine-code program against a configurable
// set-associative cache and prints a trace of every processor/cache/memory
// transfer to standard output.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/cachetrace/cache"
	"github.com/sarchlab/cachetrace/cpu"
	"github.com/sarchlab/cachetrace/loader"
	"github.com/sarchlab/cachetrace/machine"
)

func main() {
	os.Exit(run())
}

func run() int {
	filePath := flag.String("f", "", "machine code file to simulate")
	blockSize := flag.Int("b", 0, "block size of the cache, in words")
	numSets := flag.Int("s", 0, "number of sets in the cache")
	associativity := flag.Int("a", 0, "associativity of the cache")
	verbose := flag.Bool("v", false, "print cache statistics to stderr after running")
	flag.Parse()

	in := bufio.NewScanner(os.Stdin)

	*filePath = promptForPath(in, *filePath)
	*blockSize = promptForPowerOfTwo(in, *blockSize, "Enter the block size of the cache (in words):")

	for {
		*numSets = promptForPowerOfTwo(in, *numSets, "Enter the number of sets in the cache:")
		*associativity = promptForPowerOfTwo(in, *associativity, "Enter the associativity of the cache:")
		if *numSets**associativity > 256 {
			fmt.Fprintln(os.Stderr, "number of sets times associativity must not exceed 256")
			*numSets = 0
			*associativity = 0
			continue
		}
		break
	}

	mem := machine.NewMemory()
	if _, err := loader.Load(*filePath, mem); err != nil {
		fmt.Fprintf(os.Stderr, "cachesim: %v\n", err)
		return 1
	}

	geometry := cache.NewGeometry(*blockSize, *numSets, *associativity)
	engine := cache.New(geometry, mem, cache.NewWriterLogger(os.Stdout))
	regs := machine.NewRegisterFile()

	interp := cpu.New(regs, engine)
	interp.Run()

	if *verbose {
		printStats(engine.Stats())
	}

	return 0
}

func promptForPath(in *bufio.Scanner, value string) string {
	for strings.TrimSpace(value) == "" {
		fmt.Println("Enter the name of the machine code file to simulate:")
		if !in.Scan() {
			break
		}
		value = strings.TrimSpace(in.Text())
	}
	return value
}

func promptForPowerOfTwo(in *bufio.Scanner, value int, prompt string) int {
	for value < 1 || !isPowerOfTwo(value) {
		fmt.Println(prompt)
		if !in.Scan() {
			break
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			continue
		}
		value = parsed
	}
	return value
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func printStats(stats cache.Statistics) {
	fmt.Fprintf(os.Stderr, "reads=%d writes=%d hits=%d misses=%d evictions=%d writebacks=%d\n",
		stats.Reads, stats.Writes, stats.Hits, stats.Misses, stats.Evictions, stats.Writebacks)
}
