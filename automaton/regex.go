package automaton

import (
	"strings"
	"unicode"

	"github.com/yarovoy/cfpq/apperr"
)

// ParseRegex parses the extended syntax (·/whitespace concatenation, |
// alternation, * Kleene star, ? optional, parentheses, bare word literals)
// into an ε-NFA via Thompson construction. Multi-character identifiers
// (e.g. "ab") are single alphabet symbols, not two concatenated
// single-character symbols; juxtapose them with whitespace or "·" to
// concatenate.
func ParseRegex(src string) (*NFA, error) {
	p := &regexParser{toks: tokenizeRegex(src)}
	if len(p.toks) == 0 {
		return emptyWordNFA(), nil
	}

	frag, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, apperr.Parse("regex %q: unexpected trailing token %q", src, p.toks[p.pos].text)
	}

	return frag.toNFA(), nil
}

// --- tokenizer ---

type tokKind int

const (
	tokLiteral tokKind = iota
	tokLParen
	tokRParen
	tokAlt
	tokStar
	tokOpt
	tokPlus
	tokDot     // explicit concatenation operator "·"
	tokInvalid // a rune outside the regex syntax; rejected by the parser
)

type token struct {
	kind tokKind
	text string
}

func tokenizeRegex(src string) []token {
	var toks []token
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case r == '|':
			toks = append(toks, token{kind: tokAlt})
			i++
		case r == '*':
			toks = append(toks, token{kind: tokStar})
			i++
		case r == '?':
			toks = append(toks, token{kind: tokOpt})
			i++
		case r == '+':
			toks = append(toks, token{kind: tokPlus})
			i++
		case r == '·':
			toks = append(toks, token{kind: tokDot})
			i++
		case r == 'ε' && (i+1 >= len(runes) || !isWordRune(runes[i+1])):
			toks = append(toks, token{kind: tokLiteral, text: ""})
			i++
		default:
			start := i
			for i < len(runes) && isWordRune(runes[i]) {
				i++
			}
			if i == start {
				toks = append(toks, token{kind: tokInvalid, text: string(r)})
				i++
				continue
			}
			toks = append(toks, token{kind: tokLiteral, text: string(runes[start:i])})
		}
	}

	return toks
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// --- recursive-descent parser building Thompson fragments directly ---

type regexParser struct {
	toks []token
	pos  int
}

func (p *regexParser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}

	return p.toks[p.pos], true
}

func (p *regexParser) parseAlt() (*fragment, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokAlt {
			break
		}
		p.pos++
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = altFragment(left, right)
	}

	return left, nil
}

func (p *regexParser) parseConcat() (*fragment, error) {
	var parts []*fragment
	for {
		t, ok := p.peek()
		if !ok || t.kind == tokAlt || t.kind == tokRParen {
			break
		}
		if t.kind == tokDot {
			p.pos++
			continue
		}
		f, err := p.parseRep()
		if err != nil {
			return nil, err
		}
		parts = append(parts, f)
	}
	if len(parts) == 0 {
		return nil, apperr.Parse("regex: empty operand where a term was expected")
	}
	out := parts[0]
	for _, f := range parts[1:] {
		out = concatFragment(out, f)
	}

	return out, nil
}

func (p *regexParser) parseRep() (*fragment, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok {
			break
		}
		switch t.kind {
		case tokStar:
			atom = starFragment(atom)
			p.pos++
		case tokOpt:
			atom = optFragment(atom)
			p.pos++
		case tokPlus:
			atom = concatFragment(atom, starFragment(atom.clone()))
			p.pos++
		default:
			return atom, nil
		}
	}

	return atom, nil
}

func (p *regexParser) parseAtom() (*fragment, error) {
	t, ok := p.peek()
	if !ok {
		return nil, apperr.Parse("regex: unexpected end of input")
	}
	switch t.kind {
	case tokLParen:
		p.pos++
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokRParen {
			return nil, apperr.Parse("regex: unbalanced parenthesis")
		}
		p.pos++

		return inner, nil
	case tokLiteral:
		p.pos++
		if t.text == "" {
			return epsFragment(), nil
		}

		return literalFragment(t.text), nil
	default:
		return nil, apperr.Parse("regex: unexpected token at position %d", p.pos)
	}
}

// --- Thompson fragments ---

// fragment is a partial ε-NFA with exactly one dangling start and one
// dangling accept state, the classic Thompson-construction invariant.
type fragment struct {
	states []State
	delta  []Transition
	start  State
	accept State
	next   *int
}

func newFragmentCounter() *int {
	n := 0
	return &n
}

func (f *fragment) freshState() State {
	s := NewIntState("regex", *f.next)
	*f.next++
	f.states = append(f.states, s)

	return s
}

func (f *fragment) clone() *fragment {
	return &fragment{states: append([]State(nil), f.states...), delta: append([]Transition(nil), f.delta...), start: f.start, accept: f.accept, next: f.next}
}

func literalFragment(label string) *fragment {
	f := &fragment{next: newFragmentCounter()}
	start := f.freshState()
	accept := f.freshState()
	f.start, f.accept = start, accept
	f.delta = append(f.delta, Transition{From: start, Label: label, To: accept})

	return f
}

func epsFragment() *fragment {
	f := &fragment{next: newFragmentCounter()}
	start := f.freshState()
	accept := f.freshState()
	f.start, f.accept = start, accept
	f.delta = append(f.delta, Transition{From: start, Label: Eps, To: accept})

	return f
}

func renumber(f *fragment, counter *int) map[State]State {
	remap := make(map[State]State, len(f.states))
	for _, s := range f.states {
		remap[s] = NewIntState("regex", *counter)
		*counter++
	}

	return remap
}

func applyRemap(remap map[State]State, s State) State { return remap[s] }

func mergeFragments(a, b *fragment) (*fragment, map[State]State, map[State]State) {
	counter := newFragmentCounter()
	ra := renumber(a, counter)
	rb := renumber(b, counter)

	out := &fragment{next: counter}
	for _, s := range a.states {
		out.states = append(out.states, applyRemap(ra, s))
	}
	for _, s := range b.states {
		out.states = append(out.states, applyRemap(rb, s))
	}
	for _, t := range a.delta {
		out.delta = append(out.delta, Transition{From: applyRemap(ra, t.From), Label: t.Label, To: applyRemap(ra, t.To)})
	}
	for _, t := range b.delta {
		out.delta = append(out.delta, Transition{From: applyRemap(rb, t.From), Label: t.Label, To: applyRemap(rb, t.To)})
	}

	return out, ra, rb
}

func concatFragment(a, b *fragment) *fragment {
	out, ra, rb := mergeFragments(a, b)
	out.delta = append(out.delta, Transition{From: applyRemap(ra, a.accept), Label: Eps, To: applyRemap(rb, b.start)})
	out.start = applyRemap(ra, a.start)
	out.accept = applyRemap(rb, b.accept)

	return out
}

func altFragment(a, b *fragment) *fragment {
	out, ra, rb := mergeFragments(a, b)
	start := out.freshState()
	accept := out.freshState()
	out.delta = append(out.delta,
		Transition{From: start, Label: Eps, To: applyRemap(ra, a.start)},
		Transition{From: start, Label: Eps, To: applyRemap(rb, b.start)},
		Transition{From: applyRemap(ra, a.accept), Label: Eps, To: accept},
		Transition{From: applyRemap(rb, b.accept), Label: Eps, To: accept},
	)
	out.start, out.accept = start, accept

	return out
}

func starFragment(a *fragment) *fragment {
	counter := newFragmentCounter()
	ra := renumber(a, counter)
	out := &fragment{next: counter}
	for _, s := range a.states {
		out.states = append(out.states, applyRemap(ra, s))
	}
	for _, t := range a.delta {
		out.delta = append(out.delta, Transition{From: applyRemap(ra, t.From), Label: t.Label, To: applyRemap(ra, t.To)})
	}
	start := out.freshState()
	accept := out.freshState()
	out.delta = append(out.delta,
		Transition{From: start, Label: Eps, To: applyRemap(ra, a.start)},
		Transition{From: start, Label: Eps, To: accept},
		Transition{From: applyRemap(ra, a.accept), Label: Eps, To: accept},
		Transition{From: applyRemap(ra, a.accept), Label: Eps, To: applyRemap(ra, a.start)},
	)
	out.start, out.accept = start, accept

	return out
}

func optFragment(a *fragment) *fragment {
	counter := newFragmentCounter()
	ra := renumber(a, counter)
	out := &fragment{next: counter}
	for _, s := range a.states {
		out.states = append(out.states, applyRemap(ra, s))
	}
	for _, t := range a.delta {
		out.delta = append(out.delta, Transition{From: applyRemap(ra, t.From), Label: t.Label, To: applyRemap(ra, t.To)})
	}
	start := out.freshState()
	accept := out.freshState()
	out.delta = append(out.delta,
		Transition{From: start, Label: Eps, To: applyRemap(ra, a.start)},
		Transition{From: start, Label: Eps, To: accept},
		Transition{From: applyRemap(ra, a.accept), Label: Eps, To: accept},
	)
	out.start, out.accept = start, accept

	return out
}

func (f *fragment) toNFA() *NFA {
	return &NFA{States: f.states, Delta: f.delta, Start: []State{f.start}, Final: []State{f.accept}}
}

func emptyWordNFA() *NFA {
	return epsFragment().toNFA()
}

// regexTextOf renders a single symbol as regex-literal text, escaping
// nothing since labels are restricted to word characters in this engine.
func regexTextOf(symbol string) string {
	if symbol == Eps {
		return "ε"
	}

	return symbol
}

// joinConcat renders a sequence of already-rendered regex terms as their
// ·-concatenation, matching the textual convention CFGToECFG emits.
func joinConcat(terms []string) string {
	return strings.Join(terms, " ")
}
