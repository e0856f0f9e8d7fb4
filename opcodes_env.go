package csound

// ---- envelopes and line generators ------------------------------------------
//
// Envelope opcodes list their control variant first: with all-init operands
// every variant matches, and first-match order makes control-rate the default
// the way the engine's own defaults read. The audio variants of the all-init
// opcodes are therefore never selected by resolution; they document the
// engine's overload set, and audio-rate envelopes come from the A lift
// (opcodes_conv.go) on the control result.

func registerEnvOpcodes(c *catalogBuilder) {
	c.register(opcodeEntry{
		name: "line", nouts: 1,
		doc: "straight line between two values over a duration",
		sigs: []Signature{
			{Outs: outs(Kr), Ins: Slots(Ir, Ir, Ir)},
			{Outs: outs(Ar), Ins: Slots(Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "expon", nouts: 1,
		doc: "exponential curve between two values over a duration",
		sigs: []Signature{
			{Outs: outs(Kr), Ins: Slots(Ir, Ir, Ir)},
			{Outs: outs(Ar), Ins: Slots(Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "linseg", nouts: 1,
		doc: "piecewise line segments: value then any number of duration/value pairs",
		sigs: []Signature{
			{Outs: outs(Kr), Ins: PrefixRepeat([]Rate{Ir}, Ir, Ir)},
			{Outs: outs(Ar), Ins: PrefixRepeat([]Rate{Ir}, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "expseg", nouts: 1,
		doc: "piecewise exponential segments: value then duration/value pairs",
		sigs: []Signature{
			{Outs: outs(Kr), Ins: PrefixRepeat([]Rate{Ir}, Ir, Ir)},
			{Outs: outs(Ar), Ins: PrefixRepeat([]Rate{Ir}, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "linen", nouts: 1,
		doc: "straight-line rise and decay envelope applied to an amplitude",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Ir, Ir, Ir)},
			{Outs: outs(Kr), Ins: Slots(Kr, Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "linenr", nouts: 1,
		doc: "linen with a release segment tied to note release",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Ir, Ir, Ir)},
			{Outs: outs(Kr), Ins: Slots(Kr, Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "adsr", nouts: 1,
		doc: "attack/decay/sustain/release envelope",
		sigs: []Signature{
			{Outs: outs(Kr), Ins: Slots(Ir, Ir, Ir, Ir, Ir)},
			{Outs: outs(Ar), Ins: Slots(Ir, Ir, Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "madsr", nouts: 1,
		doc: "adsr with the release segment tied to note release",
		sigs: []Signature{
			{Outs: outs(Kr), Ins: Slots(Ir, Ir, Ir, Ir, Ir)},
			{Outs: outs(Ar), Ins: Slots(Ir, Ir, Ir, Ir, Ir)},
		},
	})
}

// Line moves from a to b over dur seconds. With all-init operands the
// control variant is listed first and always wins; lift with A for an
// audio-rate ramp.
func Line(a, dur, b D) Sig {
	return wrapSig(opcs("line", a, dur, b))
}

// Expon moves exponentially from a to b over dur seconds; a and b must be
// non-zero and share a sign (engine semantics, not checked here). Resolves
// control-rate like Line; lift with A for audio.
func Expon(a, dur, b D) Sig {
	return wrapSig(opcs("expon", a, dur, b))
}

// Linseg traces line segments through pts: a start value followed by
// duration/value pairs. Resolves control-rate like Line; lift with A for
// audio.
func Linseg(start D, pts ...D) Sig {
	return wrapSig(opcs("linseg", dSeq(start, pts)...))
}

// Expseg traces exponential segments through pts, shaped like Linseg and
// control-rate like it.
func Expseg(start D, pts ...D) Sig {
	return wrapSig(opcs("expseg", dSeq(start, pts)...))
}

// Linen shapes amp with a rise of irise seconds and a decay of idec seconds
// within a total of idur.
func Linen(amp Val, irise, idur, idec D) Sig {
	return wrapSig(opcs("linen", amp, irise, idur, idec))
}

// Linenr is Linen whose final segment begins at note release.
func Linenr(amp Val, irise, idec, iatdec D) Sig {
	return wrapSig(opcs("linenr", amp, irise, idec, iatdec))
}

// Adsr is a standard four-segment envelope; the optional operand delays
// onset. Resolves control-rate; lift with A for audio.
func Adsr(att, dec, slev, rel D, opt ...D) Sig {
	args := append(vals(att, dec, slev, rel), optD(opt, 0)...)
	return wrapSig(opcs("adsr", args...))
}

// Madsr is Adsr with its release stage triggered by note release, and
// control-rate like it.
func Madsr(att, dec, slev, rel D, opt ...D) Sig {
	args := append(vals(att, dec, slev, rel), optD(opt, 0)...)
	return wrapSig(opcs("madsr", args...))
}

func dSeq(start D, rest []D) []Val {
	args := make([]Val, 0, 1+len(rest))
	args = append(args, start)
	for _, d := range rest {
		args = append(args, d)
	}
	return args
}
