// Package loader reads a machine-code text file into main memory.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/cachetrace/machine"
)

// Load reads one decimal integer per line from path into mem, starting at
// word 0, and records the number of lines loaded. The file is closed before
// Load returns, whether or not it succeeds.
func Load(path string, mem *machine.Memory) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening program file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if n >= machine.Capacity {
			return n, fmt.Errorf("program file exceeds memory capacity of %d words", machine.Capacity)
		}
		value, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			return n, fmt.Errorf("parsing line %d of program file: %w", n, err)
		}
		mem.WriteWord(n, int32(value))
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("reading program file: %w", err)
	}

	mem.SetLoaded(n)
	return n, nil
}
