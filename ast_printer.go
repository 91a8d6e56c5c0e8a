package minic

import (
	"fmt"

	"github.com/kuruczgy-subset/minic/ascii"
)

// PrettyPrint renders an AST subtree on a single line. It is a thin
// dispatcher over Node.String() — every concrete node already knows
// how to render itself tersely — with optional ANSI coloring of
// literals, operators and identifiers. It adds no backtick quoting,
// and diagnostic messages are built without it.
func PrettyPrint(n Node, color bool) string {
	if n == nil {
		return "<nil>"
	}
	s := n.String()
	if !color {
		return s
	}
	theme := ascii.DefaultTheme
	switch n.(type) {
	case *IntLitNode, *CharLitNode, *StringLitNode:
		return ascii.Color(theme.Literal, "%s", s)
	case *BinNode, *UnaryNode:
		return ascii.Color(theme.Operator, "%s", s)
	case *IdentNode:
		return ascii.Color(theme.Operand, "%s", s)
	default:
		return s
	}
}

// DumpTree renders n and its descendants as an indented tree, one
// line per node, for a structural view rather than the single-line
// form. The CLI's -dump-ast flag uses DumpAST (spew) instead. Reuses
// treePrinter's indentation bookkeeping verbatim.
func DumpTree(n Node) string {
	tp := newTreePrinter(func(s string, _ Node) string { return s })
	dumpNode(tp, n)
	return tp.output.String()
}

func dumpNode(tp *treePrinter[Node], n Node) {
	if n == nil {
		tp.pwritel("<nil>")
		return
	}
	label := fmt.Sprintf("%T %s", n, n)
	children := childrenOf(n)
	if len(children) == 0 {
		tp.pwritel(label)
		return
	}
	tp.pwritel(label + " {")
	tp.indent("  ")
	for _, c := range children {
		dumpNode(tp, c)
	}
	tp.unindent()
	tp.pwritel("}")
}

// childrenOf collects n's immediate child nodes using the same
// traversal table astInspect relies on, stopping at depth 1.
func childrenOf(n Node) []Node {
	var out []Node
	depth := 0
	astInspect(n, func(child Node) bool {
		if child == n {
			depth++
			return true
		}
		if depth == 1 {
			out = append(out, child)
		}
		return false
	})
	return out
}
