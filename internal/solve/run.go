package solve

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
)

// Run streams r line by line into s and returns the extracted solution.
// Ingestion and extraction never overlap; a malformed line is fatal to
// the whole run.
func Run(r io.Reader, s Solver) (string, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := s.HandleLine(sc.Text()); err != nil {
			return "", fmt.Errorf("line %q: %w", sc.Text(), err)
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return s.ExtractSolution()
}

// InputPath locates the puzzle dataset for a selector under dir, e.g.
// inputs/2023/d08p01.txt.
func InputPath(dir string, year Year, day Day, part Part) string {
	name := fmt.Sprintf("d%sp%s.txt", day, part)
	return filepath.Join(dir, year.String(), name)
}
