package csound

// expr.go — opaque expression nodes.
//
// Everything a binding returns is backed by an *expr: a constant, a string, a
// p-field reference, an infix arithmetic combination, an opcode call, or one
// output port of a multi-output call. Callers never see *expr directly; they
// hold typed handles (types.go) and the renderer (render.go) walks the graph.
// Nodes are immutable once built; sharing a node between two call sites is
// what makes the renderer emit a common subexpression exactly once.

import "fmt"

type exprKind uint8

const (
	exprConst exprKind = iota
	exprStr
	exprPField
	exprBinOp
	exprCall
	exprPort
	exprLift
)

type expr struct {
	kind exprKind
	rate Rate

	num  float64 // exprConst value, exprPField index
	text string  // exprStr literal, exprCall opcode name, exprBinOp operator

	args []*expr // exprCall inputs, exprBinOp operands, exprPort {call}
	outs []Rate  // exprCall declared output rates
	port int     // exprPort index into outs
}

func constExpr(x float64, r Rate) *expr {
	return &expr{kind: exprConst, rate: r, num: x}
}

func strExpr(s string) *expr {
	return &expr{kind: exprStr, rate: Sr, text: s}
}

func pfieldExpr(n int) *expr {
	return &expr{kind: exprPField, rate: Ir, num: float64(n)}
}

func binExpr(op string, a, b *expr) *expr {
	return &expr{
		kind: exprBinOp,
		rate: unifyRates(a.rate, b.rate),
		text: op,
		args: []*expr{a, b},
	}
}

// callExpr builds the node for a resolved opcode invocation. For a
// single-output opcode the node itself carries the output rate; multi-output
// calls are addressed through portExpr.
func callExpr(name string, outs []Rate, args []*expr) *expr {
	n := &expr{kind: exprCall, text: name, outs: outs, args: args}
	if len(outs) == 1 {
		n.rate = outs[0]
	}
	return n
}

// liftExpr retags e at rate r without copying it: the lift delegates to the
// wrapped node, so a shared underlying call keeps its pointer identity and is
// still emitted once.
func liftExpr(e *expr, r Rate) *expr {
	return &expr{kind: exprLift, rate: r, args: []*expr{e}}
}

// portExpr selects output i of a multi-output call.
func portExpr(call *expr, i int) *expr {
	if call.kind != exprCall || i < 0 || i >= len(call.outs) {
		panic(fmt.Sprintf("csound: bad output port %d of %q", i, call.text))
	}
	return &expr{kind: exprPort, rate: call.outs[i], args: []*expr{call}, port: i}
}
