package ecfg

import (
	"strings"

	"github.com/yarovoy/cfpq/apperr"
	"github.com/yarovoy/cfpq/grammar"
)

// ECFGFromText parses "HEAD -> regex" lines, one per nonterminal; a
// repeated head is a ParseError, as is a line that doesn't split into
// exactly head and regex around "->". The regex text itself is validated
// lazily, by ECFGToRSM.
func ECFGFromText(text string, start grammar.Nonterminal) (*ECFG, error) {
	out := &ECFG{Start: start, Rules: map[grammar.Nonterminal]string{}}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		parts := strings.Split(trimmed, "->")
		if len(parts) != 2 {
			return nil, apperr.Parse("ecfg line %q: expected exactly one \"->\"", trimmed)
		}
		head := grammar.Nonterminal(strings.TrimSpace(parts[0]))
		if head == "" {
			return nil, apperr.Parse("ecfg line %q: empty head", trimmed)
		}
		if _, dup := out.Rules[head]; dup {
			return nil, apperr.Parse("ecfg: head %q repeated", head)
		}
		out.Rules[head] = strings.TrimSpace(parts[1])
	}

	return out, nil
}
