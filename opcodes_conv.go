package csound

// ---- rate conversions and elementary math -----------------------------------

func registerConvOpcodes(c *catalogBuilder) {
	c.register(opcodeEntry{
		name: "k", nouts: 1,
		doc: "convert a signal to control rate",
		sigs: []Signature{
			{Outs: outs(Kr), Ins: Slots(Xr)},
		},
	})
	c.register(opcodeEntry{
		name: "a", nouts: 1,
		doc: "convert a control signal to audio rate",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Kr)},
		},
	})
	c.register(opcodeEntry{
		name: "i", nouts: 1,
		doc: "take the init-time value of a control signal",
		sigs: []Signature{
			{Outs: outs(Ir), Ins: Slots(Kr)},
		},
	})
	c.register(opcodeEntry{
		name: "upsamp", nouts: 1,
		doc: "hold a control signal constant across each audio block",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Kr)},
		},
	})
	c.register(opcodeEntry{
		name: "downsamp", nouts: 1,
		doc: "average an audio signal down to control rate",
		sigs: []Signature{
			{Outs: outs(Kr), Ins: Slots(Ar, Ir)},
		},
	})
	// The math functions keep the rate of their input.
	unary := []Signature{
		{Outs: outs(Ar), Ins: Slots(Ar)},
		{Outs: outs(Kr), Ins: Slots(Kr)},
		{Outs: outs(Ir), Ins: Slots(Ir)},
	}
	c.register(opcodeEntry{name: "abs", nouts: 1, doc: "absolute value", sigs: unary})
	c.register(opcodeEntry{name: "sqrt", nouts: 1, doc: "square root", sigs: unary})
	c.register(opcodeEntry{
		name: "pow", nouts: 1,
		doc: "raise to a power",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Kr)},
			{Outs: outs(Kr), Ins: Slots(Kr, Kr)},
			{Outs: outs(Ir), Ins: Slots(Ir, Ir)},
		},
	})
}

// K converts v to control rate.
func K(v Sig) Sig {
	return wrapSig(opcs("k", v))
}

// A converts a control signal to audio rate by interpolation.
func A(v Sig) Sig {
	return wrapSig(opcs("a", v))
}

// IOf takes the init-time snapshot of a control signal.
func IOf(v Sig) D {
	return wrapD(opcs("i", v))
}

// Upsamp holds v constant over each audio block.
func Upsamp(v Sig) Sig {
	return wrapSig(opcs("upsamp", v))
}

// Downsamp averages an audio signal down to control rate over an optional
// window length.
func Downsamp(v Sig, opt ...D) Sig {
	args := append(vals(v), optD(opt, 0)...)
	return wrapSig(opcs("downsamp", args...))
}

// Abs keeps the input's rate.
func Abs(v Val) Sig {
	return wrapSig(opcs("abs", v))
}

// Sqrt keeps the input's rate.
func Sqrt(v Val) Sig {
	return wrapSig(opcs("sqrt", v))
}

// Pow raises base to exp; the result follows the base's rate.
func Pow(base, exp Val) Sig {
	return wrapSig(opcs("pow", base, exp))
}
