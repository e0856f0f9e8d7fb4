package csound

// ---- delays and reverberators -----------------------------------------------

func registerDelayOpcodes(c *catalogBuilder) {
	c.register(opcodeEntry{
		name: "delay", nouts: 1,
		doc: "fixed delay line",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "vdelay", nouts: 1,
		doc: "interpolating variable delay line",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Ar, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "delayr", nouts: 1,
		doc: "read head of a delay line, pairs with delayw",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "delayw", nouts: 0, effect: true,
		doc: "write head of the delay line opened by the last delayr",
		sigs: []Signature{
			{Ins: Slots(Ar)},
		},
	})
	c.register(opcodeEntry{
		name: "deltap", nouts: 1,
		doc: "tap a delayr/delayw line at a control-rate delay time",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Kr)},
		},
	})
	c.register(opcodeEntry{
		name: "deltapi", nouts: 1,
		doc: "interpolating tap of a delayr/delayw line",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr)},
		},
	})
	c.register(opcodeEntry{
		name: "comb", nouts: 1,
		doc: "comb filter with a given reverb time and loop time",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "reverb", nouts: 1,
		doc: "Schroeder reverberator",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Kr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "reverbsc", nouts: 2,
		doc: "stereo feedback-delay-network reverb",
		sigs: []Signature{
			{Outs: outs(Ar, Ar), Ins: Slots(Ar, Ar, Kr, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "freeverb", nouts: 2,
		doc: "stereo Freeverb (Schroeder/Moorer) reverb",
		sigs: []Signature{
			{Outs: outs(Ar, Ar), Ins: Slots(Ar, Ar, Kr, Kr, Ir)},
		},
	})
}

// Delay delays sig by dlt seconds.
func Delay(sig Sig, dlt D, opt ...D) Sig {
	args := append(vals(sig, dlt), optD(opt, 0)...)
	return wrapSig(opcs("delay", args...))
}

// Vdelay delays sig by the audio-rate time adlt (milliseconds), within a
// maximum of maxdlt.
func Vdelay(sig, adlt Sig, maxdlt D, opt ...D) Sig {
	args := append(vals(sig, adlt, maxdlt), optD(opt, 0)...)
	return wrapSig(opcs("vdelay", args...))
}

// Delayr opens a delay line of dlt seconds and returns its read head.
func Delayr(dlt D, opt ...D) Sig {
	args := append(vals(dlt), optD(opt, 0)...)
	return wrapSig(opcs("delayr", args...))
}

// Delayw writes sig into the delay line opened by the most recent Delayr.
func Delayw(sig Sig) Effect {
	return effOpcs("delayw", sig)
}

// Deltap taps the current delay line dlt seconds back.
func Deltap(dlt Sig) Sig {
	return wrapSig(opcs("deltap", dlt))
}

// Deltapi is Deltap with interpolation; dlt may run at audio rate.
func Deltapi(dlt Val) Sig {
	return wrapSig(opcs("deltapi", dlt))
}

// Comb reverberates sig with reverb time rvt and loop time lpt.
func Comb(sig Sig, rvt Sig, lpt D, opt ...D) Sig {
	args := append(vals(sig, rvt, lpt), optD(opt, 0)...)
	return wrapSig(opcs("comb", args...))
}

// Reverb reverberates sig with reverb time rvt.
func Reverb(sig Sig, rvt Sig, opt ...D) Sig {
	args := append(vals(sig, rvt), optD(opt, 0)...)
	return wrapSig(opcs("reverb", args...))
}

// Reverbsc runs a stereo pair through a feedback-delay-network reverb with
// feedback fb and cutoff co, returning the wet pair.
func Reverbsc(l, r Sig, fb, co Sig, opt ...D) (Sig, Sig) {
	args := append(vals(l, r, fb, co), optD(opt, 44100, 0)...)
	return sigPair(mopcs("reverbsc", args...))
}

// Freeverb runs a stereo pair through Freeverb with room size size and
// high-frequency damping damp.
func Freeverb(l, r Sig, size, damp Sig, opt ...D) (Sig, Sig) {
	args := append(vals(l, r, size, damp), optD(opt, 44100)...)
	return sigPair(mopcs("freeverb", args...))
}
