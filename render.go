package csound

// render.go — rendering instruments to orchestra text.
//
// The renderer walks each effect statement's expression graph, emits every
// opcode call as one line ("a1 oscili k1, 440, 1"), and inlines constants,
// strings, p-fields and arithmetic at their argument positions. Identifiers
// are allocated per output rate (a1, a2, k1, i1, S1) in first-use order, so
// output is deterministic for a given construction order. A node shared
// between consumers is emitted exactly once and referenced by its identifier
// afterwards; a multi-output call is emitted once with one identifier per
// output, whichever port is reached first.
//
// Statements appear in Block submission order, argument-producing calls
// always ahead of their consumers. Output is plain text.

import (
	"fmt"
	"strconv"
	"strings"
)

type renderer struct {
	b      strings.Builder
	ids    map[*expr][]string
	counts map[Rate]int
	indent string
}

func newRenderer(indent string) *renderer {
	return &renderer{
		ids:    map[*expr][]string{},
		counts: map[Rate]int{},
		indent: indent,
	}
}

func (r *renderer) fresh(rate Rate) string {
	r.counts[rate]++
	return rate.String() + strconv.Itoa(r.counts[rate])
}

// operand renders e as an argument token, first emitting any call statements
// it depends on.
func (r *renderer) operand(e *expr) string {
	switch e.kind {
	case exprConst:
		return formatNum(e.num)
	case exprStr:
		return quoteOrcString(e.text)
	case exprPField:
		return "p" + strconv.Itoa(int(e.num))
	case exprBinOp:
		l := r.operand(e.args[0])
		rr := r.operand(e.args[1])
		return "(" + l + " " + e.text + " " + rr + ")"
	case exprCall:
		return r.callIDs(e)[0]
	case exprPort:
		return r.callIDs(e.args[0])[e.port]
	case exprLift:
		return r.operand(e.args[0])
	}
	panic(fmt.Sprintf("csound: unrenderable node kind %d", e.kind))
}

// callIDs emits the statement for a call once and returns its output
// identifiers.
func (r *renderer) callIDs(call *expr) []string {
	if ids, done := r.ids[call]; done {
		return ids
	}
	args := make([]string, len(call.args))
	for i, a := range call.args {
		args[i] = r.operand(a)
	}
	ids := make([]string, len(call.outs))
	for i, rate := range call.outs {
		ids[i] = r.fresh(rate)
	}
	r.ids[call] = ids
	r.line(ids, call.text, args)
	return ids
}

// statement emits an effectful call, which has no output identifiers.
func (r *renderer) statement(call *expr) {
	args := make([]string, len(call.args))
	for i, a := range call.args {
		args[i] = r.operand(a)
	}
	r.line(nil, call.text, args)
}

func (r *renderer) line(ids []string, name string, args []string) {
	r.b.WriteString(r.indent)
	if len(ids) > 0 {
		r.b.WriteString(strings.Join(ids, ", "))
		r.b.WriteByte(' ')
	}
	r.b.WriteString(name)
	if len(args) > 0 {
		r.b.WriteByte(' ')
		r.b.WriteString(strings.Join(args, ", "))
	}
	r.b.WriteByte('\n')
}

func (r *renderer) block(b *Block) {
	for _, stmt := range b.stmts {
		r.statement(stmt)
	}
}

// RenderBlock renders the statements of one effect block, unindented.
func RenderBlock(b *Block) string {
	r := newRenderer("")
	r.block(b)
	return r.b.String()
}

// RenderInstr renders one numbered instrument definition.
func RenderInstr(in *Instr) string {
	var b strings.Builder
	fmt.Fprintf(&b, "instr %d\n", in.Num)
	r := newRenderer("  ")
	r.block(&in.Block)
	b.WriteString(r.b.String())
	b.WriteString("endin\n")
	return b.String()
}

// Header carries the orchestra-wide settings emitted ahead of the
// instruments. The zero value is not useful; use DefaultHeader.
type Header struct {
	SampleRate int
	BlockSize  int
	Channels   int
	ZeroDBFS   float64
}

// DefaultHeader is 44.1 kHz stereo with 32-sample control blocks and
// amplitudes normalized to 1.
func DefaultHeader() Header {
	return Header{SampleRate: 44100, BlockSize: 32, Channels: 2, ZeroDBFS: 1}
}

// RenderOrchestra renders a header plus instrument definitions, in order.
func RenderOrchestra(h Header, instrs ...*Instr) string {
	var b strings.Builder
	fmt.Fprintf(&b, "sr = %d\n", h.SampleRate)
	fmt.Fprintf(&b, "ksmps = %d\n", h.BlockSize)
	fmt.Fprintf(&b, "nchnls = %d\n", h.Channels)
	fmt.Fprintf(&b, "0dbfs = %s\n", formatNum(h.ZeroDBFS))
	for _, in := range instrs {
		b.WriteByte('\n')
		b.WriteString(RenderInstr(in))
	}
	return b.String()
}

func formatNum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func quoteOrcString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
