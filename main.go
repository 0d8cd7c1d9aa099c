package main

import (
	"fmt"

	"github.com/akashmaji946/monkeylang/lexer"
	"github.com/akashmaji946/monkeylang/parser"
)

// parseAndPrint runs src through the lexer/parser pipeline and prints its
// pretty-printed form, or its accumulated parse errors.
func parseAndPrint(src string) {
	l := lexer.New(src)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Println("parser error:", e)
		}
		return
	}

	fmt.Println(program.String())
}

func main() {
	fmt.Println("Hello, monkeylang!")

	// binary expression
	parseAndPrint(`1 + 2 * 3`)

	// unary expression
	parseAndPrint(`!!true`)

	// precedence across multiple operators
	parseAndPrint(`a + b * c + d / e - f`)

	// if/else with an implicit-return block
	parseAndPrint(`if (x < y) { x } else { y }`)
}
