package csound

// ---- noise and random generators --------------------------------------------

func registerRandOpcodes(c *catalogBuilder) {
	c.register(opcodeEntry{
		name: "rand", nouts: 1,
		doc: "bipolar random values; audio variant preferred when the amplitude rate admits both",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Ir, Ir, Ir)},
			{Outs: outs(Kr), Ins: Slots(Xr, Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "randi", nouts: 1,
		doc: "random values interpolated between new values at a given frequency",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Xr, Ir, Ir, Ir)},
			{Outs: outs(Kr), Ins: Slots(Kr, Kr, Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "randh", nouts: 1,
		doc: "random values held between new values at a given frequency",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Xr, Ir, Ir, Ir)},
			{Outs: outs(Kr), Ins: Slots(Kr, Kr, Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "noise", nouts: 1,
		doc: "white noise through a one-pole low-pass",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Kr)},
		},
	})
	c.register(opcodeEntry{
		name: "pinkish", nouts: 1,
		doc: "pink-ish noise by the Moore or Gardner method",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Ir, Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "gauss", nouts: 1,
		doc: "gaussian-distributed random values within a range",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Kr)},
			{Outs: outs(Kr), Ins: Slots(Kr)},
			{Outs: outs(Ir), Ins: Slots(Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "linrand", nouts: 1,
		doc: "linearly distributed random values within a range",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Kr)},
			{Outs: outs(Kr), Ins: Slots(Kr)},
			{Outs: outs(Ir), Ins: Slots(Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "seed", nouts: 0, effect: true,
		doc: "seed the engine's random generators; 0 seeds from the clock",
		sigs: []Signature{
			{Ins: Slots(Ir)},
		},
	})
}

// Rand produces bipolar random values scaled by amp.
func Rand(amp Sig, opt ...D) Sig {
	args := append(vals(amp), optD(opt, 0, 0, 0)...)
	return wrapSig(opcs("rand", args...))
}

// Randi interpolates between random values chosen cps times per second.
func Randi(amp, cps Sig, opt ...D) Sig {
	args := append(vals(amp, cps), optD(opt, 0, 0, 0)...)
	return wrapSig(opcs("randi", args...))
}

// Randh holds each random value until the next is chosen, cps times per
// second.
func Randh(amp, cps Sig, opt ...D) Sig {
	args := append(vals(amp, cps), optD(opt, 0, 0, 0)...)
	return wrapSig(opcs("randh", args...))
}

// Noise low-passes white noise scaled by amp; beta sets the filter pole.
func Noise(amp, beta Sig) Sig {
	return wrapSig(opcs("noise", amp, beta))
}

// Pinkish approximates pink noise from the input amplitude.
func Pinkish(amp Sig, opt ...D) Sig {
	args := append(vals(amp), optD(opt, 1, 0, 0, 0)...)
	return wrapSig(opcs("pinkish", args...))
}

// Gauss draws gaussian-distributed values in ±range. An init-rate range
// gives an init-rate draw; a control-rate range selects the audio variant,
// which is listed first.
func Gauss(rng Val) Sig {
	return wrapSig(opcs("gauss", rng))
}

// Linrand draws linearly distributed values in 0..range, resolving like
// Gauss.
func Linrand(rng Val) Sig {
	return wrapSig(opcs("linrand", rng))
}

// Seed seeds the random generators; N(0) seeds from the system clock.
func Seed(s D) Effect {
	return effOpcs("seed", s)
}
