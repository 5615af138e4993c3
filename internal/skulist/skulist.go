// Package skulist loads the list of product codes to watch.
package skulist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads product codes from a newline-delimited file.
// Lines are trimmed and blank lines are ignored.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open product codes file: %w", err)
	}
	defer file.Close()

	var codes []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		code := strings.TrimSpace(scanner.Text())
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("can't read product codes file: %w", err)
	}

	return codes, nil
}
