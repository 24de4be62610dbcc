package grammar_test

import (
	"fmt"

	"github.com/yarovoy/cfpq/grammar"
)

// ExampleParseCFG parses a small grammar, normalizes it to WCNF, and prints
// the resulting production count and whether the start symbol is nullable.
func ExampleParseCFG() {
	cfg, err := grammar.ParseCFG("S -> a S b\nS -> a b\n", "S")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	wcnf := grammar.ToWCNF(cfg)
	fmt.Println("production count:", len(wcnf.Productions))
	fmt.Println("nullable start:", grammar.Nullable(cfg)["S"])

	// Output:
	// production count: 5
	// nullable start: false
}
