package grammar

import (
	"strings"

	"github.com/yarovoy/cfpq/apperr"
)

// ParseCFG parses the shared grammar text format: one "HEAD -> BODY" rule
// per line (a head may appear on several lines), BODY a space-separated
// symbol sequence (empty means ε).
// A line's body may list several alternatives separated by "|", each
// becoming its own production with the same head. Every line must split on
// "->" into exactly two sides; anything else is a ParseError. Nonterminals
// are identified by a two-pass read: any body token matching a head seen
// anywhere in the text is a nonterminal reference, everything else is a
// terminal.
func ParseCFG(text string, start Nonterminal) (*CFG, error) {
	lines := nonBlankLines(text)

	heads := make(map[string]struct{}, len(lines))
	rawBodies := make([][][]string, len(lines))
	rawHeads := make([]string, len(lines))
	for i, line := range lines {
		head, alts, err := splitProductionLine(line)
		if err != nil {
			return nil, err
		}
		rawHeads[i] = head
		rawBodies[i] = alts
		heads[head] = struct{}{}
	}
	heads[string(start)] = struct{}{}

	cfg := &CFG{Start: start}
	for i := range lines {
		for _, alt := range rawBodies[i] {
			var symbols []Symbol
			for _, tok := range alt {
				_, isNT := heads[tok]
				symbols = append(symbols, Symbol{Name: tok, Terminal: !isNT})
			}
			cfg.Productions = append(cfg.Productions, Production{Head: Nonterminal(rawHeads[i]), Body: symbols})
		}
	}

	return cfg, nil
}

func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}

// splitProductionLine splits "HEAD -> BODY" into (head, alternatives), one
// token slice per "|"-separated alternative in BODY. A line must contain
// exactly one "->"; otherwise the intent is ambiguous and this returns a
// ParseError rather than guessing, per §9's literal resolution of the
// "treat as exactly one split, else ParseError" open question.
func splitProductionLine(line string) (string, [][]string, error) {
	parts := strings.Split(line, "->")
	if len(parts) != 2 {
		return "", nil, apperr.Parse("grammar line %q: expected exactly one \"->\"", line)
	}
	head := strings.TrimSpace(parts[0])
	if head == "" {
		return "", nil, apperr.Parse("grammar line %q: empty head", line)
	}
	bodyText := strings.TrimSpace(parts[1])
	if bodyText == "" {
		return head, [][]string{nil}, nil
	}

	alts := make([][]string, 0, 1)
	for _, alt := range strings.Split(bodyText, "|") {
		alts = append(alts, strings.Fields(strings.TrimSpace(alt)))
	}

	return head, alts, nil
}
