package aff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a .aff file from r and compiles it into an Aff.
//
// It supports the directives the recognizer needs (§3/§6 of the
// specification this package implements against): flag declarations,
// SFX/PFX tables, COMPOUNDRULE, CHECKCOMPOUNDPATTERN, ICONV, REP, BREAK,
// and the boolean CHECKCOMPOUND* toggles. Directives this recognizer does
// not consume (e.g. TRY, KEY, locale hints used only by suggestion
// generation) are parsed far enough to be skipped without error.
func Parse(r io.Reader) (*Aff, error) {
	a := New()
	scanner := bufio.NewScanner(r)
	var pendingAffix *pendingAffixBlock

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		directive := fields[0]

		if pendingAffix != nil && directive == pendingAffix.kind && len(fields) >= 2 && Flag(fields[1]) == pendingAffix.flag {
			if err := parseAffixLine(a, pendingAffix, fields); err != nil {
				return nil, err
			}
			pendingAffix.remaining--
			if pendingAffix.remaining <= 0 {
				pendingAffix = nil
			}
			continue
		}
		pendingAffix = nil

		switch directive {
		case "SFX", "PFX":
			block, err := startAffixBlock(directive, fields)
			if err != nil {
				return nil, err
			}
			pendingAffix = block
		case "FORBIDDENWORD":
			a.FORBIDDENWORD = flagArg(fields)
		case "NOSUGGEST":
			a.NOSUGGEST = flagArg(fields)
		case "KEEPCASE":
			a.KEEPCASE = flagArg(fields)
		case "NEEDAFFIX", "PSEUDOROOT":
			a.NEEDAFFIX = flagArg(fields)
		case "ONLYINCOMPOUND":
			a.ONLYINCOMPOUND = flagArg(fields)
		case "COMPOUNDFLAG":
			a.COMPOUNDFLAG = flagArg(fields)
		case "COMPOUNDBEGIN":
			a.COMPOUNDBEGIN = flagArg(fields)
		case "COMPOUNDMIDDLE":
			a.COMPOUNDMIDDLE = flagArg(fields)
		case "COMPOUNDLAST":
			a.COMPOUNDLAST = flagArg(fields)
		case "COMPOUNDPERMITFLAG":
			a.COMPOUNDPERMITFLAG = flagArg(fields)
		case "COMPOUNDFORBIDFLAG":
			a.COMPOUNDFORBIDFLAG = flagArg(fields)
		case "COMPOUNDMIN":
			n, err := intArg(fields)
			if err != nil {
				return nil, err
			}
			a.COMPOUNDMIN = n
		case "COMPOUNDWORDSMAX":
			n, err := intArg(fields)
			if err != nil {
				return nil, err
			}
			a.COMPOUNDWORDSMAX = n
			a.HAS_COMPOUNDWORDSMAX = true
		case "CHECKCOMPOUNDCASE":
			a.CHECKCOMPOUNDCASE = true
		case "CHECKCOMPOUNDTRIPLE":
			a.CHECKCOMPOUNDTRIPLE = true
		case "CHECKCOMPOUNDREP":
			a.CHECKCOMPOUNDREP = true
		case "CHECKCOMPOUNDPATTERN":
			if len(fields) >= 2 {
				if _, err := strconv.Atoi(fields[1]); err == nil {
					continue // count header line
				}
			}
			rule, err := parseCompoundPattern(fields)
			if err != nil {
				return nil, err
			}
			a.CHECKCOMPOUNDPATTERN = true
			a.CompoundPatternRules = append(a.CompoundPatternRules, rule)
		case "COMPOUNDRULE":
			if len(fields) >= 2 {
				if _, err := strconv.Atoi(fields[1]); err == nil {
					continue // count header line
				}
				a.COMPOUNDRULE = append(a.COMPOUNDRULE, fields[1])
			}
		case "ICONV":
			if pair, ok, err := parseConvLine(fields); err != nil {
				return nil, err
			} else if ok {
				a.ICONV = append(a.ICONV, pair)
			}
		case "REP":
			if pair, ok, err := parseConvLine(fields); err != nil {
				return nil, err
			} else if ok {
				a.REP = append(a.REP, pair)
			}
		case "BREAK":
			if len(fields) >= 2 {
				if _, err := strconv.Atoi(fields[1]); err == nil {
					continue
				}
				a.BREAK = append(a.BREAK, fields[1])
			}
		default:
			// Unknown/unconsumed directive (TRY, KEY, LANG, SET, ...): ignored.
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return a, nil
}

type pendingAffixBlock struct {
	kind         string
	flag         Flag
	crossProduct bool
	remaining    int
}

func startAffixBlock(kind string, fields []string) (*pendingAffixBlock, error) {
	if len(fields) < 4 {
		return nil, fmt.Errorf("aff: malformed %s header: %q", kind, strings.Join(fields, " "))
	}
	count, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("aff: %s header count: %w", kind, err)
	}
	return &pendingAffixBlock{
		kind:         kind,
		flag:         Flag(fields[1]),
		crossProduct: strings.EqualFold(fields[2], "Y"),
		remaining:    count,
	}, nil
}

// parseAffixLine parses one SFX/PFX rule line:
//
//	SFX <flag> <strip> <add>[/<affixflags>] <condition>
func parseAffixLine(a *Aff, block *pendingAffixBlock, fields []string) error {
	if len(fields) < 5 {
		return fmt.Errorf("aff: malformed %s rule: %q", block.kind, strings.Join(fields, " "))
	}
	strip := fields[2]
	if strip == "0" {
		strip = ""
	}
	addField := fields[3]
	condition := fields[4]

	add := addField
	entryFlags := make(map[Flag]struct{})
	if idx := strings.IndexByte(addField, '/'); idx >= 0 {
		add = addField[:idx]
		for _, f := range splitFlags(addField[idx+1:]) {
			entryFlags[f] = struct{}{}
		}
	}
	if add == "0" {
		add = ""
	}

	entry := &Entry{
		Flag:         block.flag,
		Strip:        strip,
		Add:          add,
		Condition:    condition,
		CrossProduct: block.crossProduct,
		Flags:        entryFlags,
	}

	if block.kind == "SFX" {
		a.SFX[block.flag] = append(a.SFX[block.flag], entry)
	} else {
		a.PFX[block.flag] = append(a.PFX[block.flag], entry)
	}
	return nil
}

func splitFlags(s string) []Flag {
	if s == "" {
		return nil
	}
	out := make([]Flag, 0, len(s))
	for _, r := range s {
		out = append(out, Flag(string(r)))
	}
	return out
}

func flagArg(fields []string) Flag {
	if len(fields) < 2 {
		return ""
	}
	return Flag(fields[1])
}

func intArg(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("aff: missing numeric argument for %s", fields[0])
	}
	return strconv.Atoi(fields[1])
}

func parseConvLine(fields []string) (ConvPair, bool, error) {
	if len(fields) < 2 {
		return ConvPair{}, false, nil
	}
	if _, err := strconv.Atoi(fields[1]); err == nil {
		return ConvPair{}, false, nil // count header line
	}
	if len(fields) < 3 {
		return ConvPair{}, false, fmt.Errorf("aff: malformed conversion line: %q", strings.Join(fields, " "))
	}
	return ConvPair{From: fields[1], To: fields[2]}, true, nil
}

// parseCompoundPattern parses "CHECKCOMPOUNDPATTERN left right [replacement]".
func parseCompoundPattern(fields []string) (CompoundPatternRule, error) {
	if len(fields) < 3 {
		return CompoundPatternRule{}, fmt.Errorf("aff: malformed CHECKCOMPOUNDPATTERN: %q", strings.Join(fields, " "))
	}
	rule := CompoundPatternRule{Left: fields[1], Right: fields[2]}
	if len(fields) >= 4 {
		rule.Replacement = fields[3]
	}
	return rule, nil
}
