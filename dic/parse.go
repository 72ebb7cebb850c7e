package dic

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/az-ai-labs/hunspellgo/aff"
)

// Parse reads a .dic file from r: a first line giving an (advisory,
// unchecked) word count, then one "stem[/flags]" entry per line.
func Parse(r io.Reader) (*Dic, error) {
	d := New()
	scanner := bufio.NewScanner(r)

	first := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if first {
			first = false
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				continue // leading count line
			}
		}
		if line == "" {
			continue
		}
		// Strip morphological data fields ("word/flags po:noun ...").
		if idx := strings.IndexByte(line, '\t'); idx >= 0 {
			line = line[:idx]
		}

		stem := line
		flags := make(map[aff.Flag]struct{})
		if idx := strings.IndexByte(line, '/'); idx >= 0 {
			stem = line[:idx]
			for _, r := range line[idx+1:] {
				flags[aff.Flag(string(r))] = struct{}{}
			}
		}
		d.Add(Word{Stem: stem, Flags: flags})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
