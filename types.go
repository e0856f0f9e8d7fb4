package csound

// types.go — the typed handles callers compose with.
//
// Four concrete handle types cover the value kinds the engine distinguishes:
//
//	Sig — a signal, audio- or control-rate; the concrete rate rides on the
//	      underlying node and is fixed by overload resolution.
//	D   — an init-rate number, computed once at note start.
//	Str — a string value.
//	Tab — a function-table handle (an init-rate number wearing a distinct
//	      type so table arguments can't be confused with plain numbers).
//
// All four satisfy Val, the currency the resolver works in. Handles are
// immutable and freely shareable; reusing one feeds the same underlying node
// to several consumers.

// Val is any value that can be passed to an opcode binding: it carries a
// concrete rate and an underlying expression node.
type Val interface {
	Rate() Rate
	node() *expr
}

// Sig is a time-varying signal. Its rate is Ar or Kr (or Ir when an
// init-rate overload of a rate-polymorphic opcode was selected).
type Sig struct{ e *expr }

// D is an init-rate number.
type D struct{ e *expr }

// Str is a string value.
type Str struct{ e *expr }

// Tab is a function-table handle.
type Tab struct{ e *expr }

func (s Sig) Rate() Rate { return s.e.rate }
func (d D) Rate() Rate   { return d.e.rate }
func (s Str) Rate() Rate { return s.e.rate }
func (t Tab) Rate() Rate { return t.e.rate }

func (s Sig) node() *expr { return s.e }
func (d D) node() *expr   { return d.e }
func (s Str) node() *expr { return s.e }
func (t Tab) node() *expr { return t.e }

// N makes an init-rate numeric constant.
func N(x float64) D { return D{constExpr(x, Ir)} }

// C makes a control-rate numeric constant, for use in signal positions
// (an Xr or Kr slot does not accept an init-rate value; see rate.go).
func C(x float64) Sig { return Sig{constExpr(x, Kr)} }

// Text makes a string constant.
func Text(s string) Str { return Str{strExpr(s)} }

// TabNum references function table n.
func TabNum(n int) Tab { return Tab{constExpr(float64(n), Ir)} }

// P references p-field n of the calling note (p4 is the first user field).
func P(n int) D { return D{pfieldExpr(n)} }

// SigOf lifts an init-rate number into a signal position as a control-rate
// value. This is a facade conversion, not an engine opcode: the renderer
// still emits the underlying number, p-field, or call result inline, and a
// lifted call keeps its identity, so it is emitted once however many
// positions consume it.
func SigOf(d D) Sig {
	return Sig{liftExpr(d.node(), Kr)}
}

/* ---------- arithmetic ---------- */

// Add, Sub, Mul and Div combine two values with infix arithmetic. The result
// rate is the faster of the operand rates; the renderer inlines these rather
// than emitting a statement.

func Add(a, b Val) Sig { return Sig{binExpr("+", a.node(), b.node())} }
func Sub(a, b Val) Sig { return Sig{binExpr("-", a.node(), b.node())} }
func Mul(a, b Val) Sig { return Sig{binExpr("*", a.node(), b.node())} }
func Div(a, b Val) Sig { return Sig{binExpr("/", a.node(), b.node())} }

/* ---------- internal wrapping ---------- */

func wrapSig(e *expr) Sig { return Sig{e} }
func wrapD(e *expr) D     { return D{e} }
func wrapTab(e *expr) Tab { return Tab{e} }

// argNodes lowers a Val slice to the underlying nodes.
func argNodes(args []Val) []*expr {
	out := make([]*expr, len(args))
	for i, a := range args {
		out[i] = a.node()
	}
	return out
}

// argRates collects the concrete rates of a call's arguments.
func argRates(args []Val) []Rate {
	out := make([]Rate, len(args))
	for i, a := range args {
		out[i] = a.Rate()
	}
	return out
}
