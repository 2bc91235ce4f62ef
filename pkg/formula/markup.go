// Package formula builds the symbolic and numeric reliability formula
// strings. Output uses a minimal inline markup vocabulary (subscript,
// superscript, line break, multiplication/addition glyphs); rendering
// that markup is the caller's concern.
package formula

import (
	"strconv"
	"strings"
)

// Markup glyphs and tags
const (
	Mul       = "·"
	Plus      = " + "
	Minus     = "−"
	LineBreak = "<br>"
)

// Formulas is a matched pair of formula strings: General uses symbolic
// block labels, WithValues substitutes rounded reliabilities.
type Formulas struct {
	General    string `json:"general"`
	WithValues string `json:"withValues"`
}

// Sub wraps s in subscript markup
func Sub(s string) string {
	return "<sub>" + s + "</sub>"
}

// Sup wraps s in superscript markup
func Sup(s string) string {
	return "<sup>" + s + "</sup>"
}

// BlockSymbol is the symbolic label of a block: p with the block's
// display number subscripted
func BlockSymbol(number int) string {
	return "p" + Sub(strconv.Itoa(number))
}

// Equation prefixes an expression with the system symbol
func Equation(expr string) string {
	return "G = " + expr
}

// Series combines expressions with the independent-AND product
func Series(terms []string) string {
	return strings.Join(terms, Mul)
}

// Parallel combines expressions with the independent-OR rule
// [1 − Π(1 − termᵢ)]. A single term passes through unchanged.
func Parallel(terms []string) string {
	if len(terms) == 1 {
		return terms[0]
	}
	complements := make([]string, len(terms))
	for i, t := range terms {
		complements[i] = "(1 " + Minus + " " + t + ")"
	}
	return "[1 " + Minus + " " + strings.Join(complements, Mul) + "]"
}

// Sum joins expressions with the addition glyph
func Sum(terms []string) string {
	return strings.Join(terms, Plus)
}
