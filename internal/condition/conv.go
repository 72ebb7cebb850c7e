package condition

import "github.com/coregx/ahocorasick"

// ConvTable applies a set of ICONV/REP "from -> to" string substitutions
// in a single left-to-right scan, longest-match-first at each position.
// It is built on ahocorasick (github.com/coregx/ahocorasick) so that an
// affix table with hundreds of conversion pairs still runs in time
// linear in the input, rather than the O(pairs * len(word)) a naive
// repeated-replace loop would cost.
type ConvTable struct {
	automaton *ahocorasick.Automaton
	replace   map[string]string
}

// NewConvTable compiles a map of "from" -> "to" pairs into a ConvTable.
// Pairs with an empty "from" are rejected: they would match everywhere.
func NewConvTable(pairs map[string]string) (*ConvTable, error) {
	replace := make(map[string]string, len(pairs))
	b := ahocorasick.NewBuilder()
	n := 0
	for from, to := range pairs {
		if from == "" {
			continue
		}
		b.AddPattern([]byte(from))
		replace[from] = to
		n++
	}
	if n == 0 {
		return &ConvTable{}, nil
	}
	automaton, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &ConvTable{automaton: automaton, replace: replace}, nil
}

// Apply runs every conversion over s in one pass. At each input position
// the longest matching "from" pattern wins, mirroring Hunspell's own
// ICONV/REP greedy-match behavior.
func (c *ConvTable) Apply(s string) string {
	if c == nil || c.automaton == nil {
		return s
	}
	var out []byte
	in := []byte(s)
	for pos := 0; pos < len(in); {
		m := c.automaton.Find(in, pos)
		if m == nil || m.Start != pos {
			out = append(out, in[pos])
			pos++
			continue
		}
		to := c.replace[string(in[m.Start:m.End])]
		out = append(out, to...)
		if m.End > pos {
			pos = m.End
		} else {
			pos++
		}
	}
	return string(out)
}
