package csound

// ---- oscillators and periodic generators ------------------------------------

func registerOscOpcodes(c *catalogBuilder) {
	c.register(opcodeEntry{
		name: "oscil", nouts: 1,
		doc: "simple table-lookup oscillator",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Xr, Ir, Ir)},
			{Outs: outs(Kr), Ins: Slots(Kr, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "oscili", nouts: 1,
		doc: "table-lookup oscillator with linear interpolation",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Xr, Ir, Ir)},
			{Outs: outs(Kr), Ins: Slots(Kr, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "oscil3", nouts: 1,
		doc: "table-lookup oscillator with cubic interpolation",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Xr, Ir, Ir)},
			{Outs: outs(Kr), Ins: Slots(Kr, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "poscil", nouts: 1,
		doc: "high-precision table-lookup oscillator",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Xr, Ir, Ir)},
			{Outs: outs(Kr), Ins: Slots(Kr, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "foscil", nouts: 1,
		doc: "basic frequency-modulated oscillator pair",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Kr, Xr, Xr, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "phasor", nouts: 1,
		doc: "normalized moving phase value",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Ir)},
			{Outs: outs(Kr), Ins: Slots(Kr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "buzz", nouts: 1,
		doc: "additive set of harmonically related cosines",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Xr, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "gbuzz", nouts: 1,
		doc: "additive cosine set with adjustable lowest harmonic and multiplier",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Xr, Kr, Kr, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "vco2", nouts: 1,
		doc: "band-limited analog-modeled oscillator",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Kr, Kr, Ir, Kr, Kr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "pluck", nouts: 1,
		doc: "Karplus-Strong plucked string",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Kr, Kr, Ir, Ir, Ir, Ir, Ir)},
		},
	})
}

// Oscil is a simple table-lookup oscillator over fn. The audio variant is
// preferred; a call with two control-rate inputs still resolves audio, since
// both signature slots are x-rate.
func Oscil(amp, cps Val, fn Tab, opt ...D) Sig {
	args := append(vals(amp, cps, fn), optD(opt, 0)...)
	return wrapSig(opcs("oscil", args...))
}

// Oscili is Oscil with linear interpolation between table points.
func Oscili(amp, cps Val, fn Tab, opt ...D) Sig {
	args := append(vals(amp, cps, fn), optD(opt, 0)...)
	return wrapSig(opcs("oscili", args...))
}

// Oscil3 is Oscil with cubic interpolation.
func Oscil3(amp, cps Val, fn Tab, opt ...D) Sig {
	args := append(vals(amp, cps, fn), optD(opt, 0)...)
	return wrapSig(opcs("oscil3", args...))
}

// Poscil is a high-precision oscillator; same shape as Oscil.
func Poscil(amp, cps Val, fn Tab, opt ...D) Sig {
	args := append(vals(amp, cps, fn), optD(opt, 0)...)
	return wrapSig(opcs("poscil", args...))
}

// Foscil is a composite carrier/modulator FM pair.
// Operands: amp, cps, carrier ratio, modulator ratio, modulation index, table.
func Foscil(amp Val, cps Sig, car, mod Val, ndx Sig, fn Tab, opt ...D) Sig {
	args := append(vals(amp, cps, car, mod, ndx, fn), optD(opt, 0)...)
	return wrapSig(opcs("foscil", args...))
}

// Phasor produces a 0..1 moving phase at the given frequency.
func Phasor(cps Val, opt ...D) Sig {
	args := append(vals(cps), optD(opt, 0)...)
	return wrapSig(opcs("phasor", args...))
}

// Buzz sums knh harmonically related cosine partials.
func Buzz(amp, cps Val, knh Sig, fn Tab, opt ...D) Sig {
	args := append(vals(amp, cps, knh, fn), optD(opt, 0)...)
	return wrapSig(opcs("buzz", args...))
}

// Gbuzz is Buzz with adjustable lowest harmonic and partial multiplier.
func Gbuzz(amp, cps Val, knh, klh, kmul Sig, fn Tab, opt ...D) Sig {
	args := append(vals(amp, cps, knh, klh, kmul, fn), optD(opt, 0)...)
	return wrapSig(opcs("gbuzz", args...))
}

// Vco2 is a band-limited sawtooth/pulse oscillator. mode selects the wave
// shape, pw the pulse width for the pulse shapes.
func Vco2(amp, cps Sig, mode D, pw, phs Sig, opt ...D) Sig {
	args := append(vals(amp, cps, mode, pw, phs), optD(opt, 0.5)...)
	return wrapSig(opcs("vco2", args...))
}

// Pluck is a Karplus-Strong plucked string. icps sets the buffer length,
// fn the initialization table (0 for random noise), meth the decay method.
func Pluck(amp, cps Sig, icps D, fn Tab, meth D, opt ...D) Sig {
	args := append(vals(amp, cps, icps, fn, meth), optD(opt, 0, 0)...)
	return wrapSig(opcs("pluck", args...))
}
