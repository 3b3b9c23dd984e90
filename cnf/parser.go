package cnf

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseInstances reads instance text from r. Each non-blank line is one
// clause of whitespace-separated literal tokens; a blank line separates
// independent formulas. Malformed tokens are reported as errors with
// their line number.
func ParseInstances(r io.Reader) ([]Formula, error) {
	sc := bufio.NewScanner(r)
	var (
		formulas []Formula
		current  Formula
		lineNum  int
	)
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			if len(current) > 0 {
				formulas = append(formulas, current)
				current = nil
			}
			continue
		}
		clause, err := ParseClause(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		current = append(current, clause)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read instance text")
	}
	if len(current) > 0 {
		formulas = append(formulas, current)
	}
	return formulas, nil
}

// LoadInstances reads instance text from the file at path.
func LoadInstances(path string) ([]Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer func() { _ = f.Close() }()
	formulas, err := ParseInstances(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %q", path)
	}
	return formulas, nil
}
