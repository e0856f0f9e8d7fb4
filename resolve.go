package csound

// resolve.go — rate-overload resolution.
//
// What this file does
// -------------------
// One binding name stands for several engine opcode variants that differ only
// in the rate class of their arguments. resolveOpcode picks the variant for a
// concrete call: it walks the opcode's signatures in declaration order and
// takes the FIRST one every argument satisfies. This is deliberately
// first-match-wins, not best-match: declaration order encodes priority, so a
// binding that lists its audio variant before its control variant prefers
// audio whenever a wildcard slot would admit both.
//
// Matching rules
// --------------
//   - Arguments align positionally against the signature's prefix slots.
//   - Arguments beyond the prefix each align against the repeating tail
//     cycle, argument (prefix+j) against cycle slot j mod len(cycle).
//   - Fewer arguments than the prefix fails the candidate; surplus arguments
//     with no repeating tail fail it too. Bindings with optional trailing
//     operands pad engine defaults before resolving, so counts line up.
//   - A slot matches exactly or by wildcard (Rate.Accepts); there is no
//     implicit coercion and no notion of a "close" match.
//
// Resolution is pure: it constructs a call node on success and touches
// nothing on failure. Effect ordering for effectful opcodes is the Block's
// concern (effect.go), never the resolver's.

// resolveOpcode selects the first signature of e matched by args and returns
// the call node tagged with that signature's output rates. On failure it
// returns a *ResolveError and no node.
func resolveOpcode(e *opcodeEntry, args []Val) (*expr, error) {
	for i := range e.sigs {
		if matchSeq(e.sigs[i].Ins, args) {
			return callExpr(e.name, e.sigs[i].Outs, argNodes(args)), nil
		}
	}
	return nil, &ResolveError{Opcode: e.name, Rates: argRates(args)}
}

// matchSeq reports whether every argument's rate satisfies its aligned slot.
func matchSeq(in InSeq, args []Val) bool {
	if len(args) < in.MinLen() {
		return false
	}
	for i, a := range args {
		slot, ok := in.slotAt(i)
		if !ok || !slot.Accepts(a.Rate()) {
			return false
		}
	}
	return true
}

// opcs resolves a cataloged opcode against args, panicking with the
// *ResolveError on rate mismatch. All single-result bindings funnel through
// here.
func opcs(name string, args ...Val) *expr {
	n, err := resolveOpcode(lookup(name), args)
	if err != nil {
		panic(err)
	}
	return n
}

// optD pads a binding's optional trailing init-rate operands: the supplied
// opts fill the leading positions, engine defaults fill the rest. Bindings
// use this so resolution always sees the full declared arity.
func optD(opts []D, defs ...float64) []Val {
	out := make([]Val, len(defs))
	for i := range defs {
		if i < len(opts) {
			out[i] = opts[i]
		} else {
			out[i] = N(defs[i])
		}
	}
	return out
}

// vals is declaration shorthand for an argument list.
func vals(args ...Val) []Val { return args }
