package csound

// ---- filters ----------------------------------------------------------------

func registerFilterOpcodes(c *catalogBuilder) {
	c.register(opcodeEntry{
		name: "tone", nouts: 1,
		doc: "first-order recursive low-pass filter",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Kr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "atone", nouts: 1,
		doc: "first-order high-pass complement of tone",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Kr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "reson", nouts: 1,
		doc: "second-order resonant band-pass filter",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Xr, Xr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "butterlp", nouts: 1,
		doc: "second-order Butterworth low-pass",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Kr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "butterhp", nouts: 1,
		doc: "second-order Butterworth high-pass",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Kr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "butterbp", nouts: 1,
		doc: "second-order Butterworth band-pass",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Kr, Kr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "moogladder", nouts: 1,
		doc: "Moog ladder low-pass with resonance",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Xr, Xr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "moogvcf", nouts: 1,
		doc: "Moog voltage-controlled filter emulation",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Ar, Xr, Xr, Ir)},
		},
	})
}

// Tone low-passes sig with half-power point khp.
func Tone(sig Sig, khp Sig, opt ...D) Sig {
	args := append(vals(sig, khp), optD(opt, 0)...)
	return wrapSig(opcs("tone", args...))
}

// Atone is the high-pass complement of Tone.
func Atone(sig Sig, khp Sig, opt ...D) Sig {
	args := append(vals(sig, khp), optD(opt, 0)...)
	return wrapSig(opcs("atone", args...))
}

// Reson band-passes sig around cf with bandwidth bw.
func Reson(sig Sig, cf, bw Val, opt ...D) Sig {
	args := append(vals(sig, cf, bw), optD(opt, 0, 0)...)
	return wrapSig(opcs("reson", args...))
}

// Butterlp low-passes sig at cutoff kfreq.
func Butterlp(sig Sig, kfreq Sig, opt ...D) Sig {
	args := append(vals(sig, kfreq), optD(opt, 0)...)
	return wrapSig(opcs("butterlp", args...))
}

// Butterhp high-passes sig at cutoff kfreq.
func Butterhp(sig Sig, kfreq Sig, opt ...D) Sig {
	args := append(vals(sig, kfreq), optD(opt, 0)...)
	return wrapSig(opcs("butterhp", args...))
}

// Butterbp band-passes sig around kfreq with bandwidth kband.
func Butterbp(sig Sig, kfreq, kband Sig, opt ...D) Sig {
	args := append(vals(sig, kfreq, kband), optD(opt, 0)...)
	return wrapSig(opcs("butterbp", args...))
}

// Moogladder filters sig through a Moog ladder model at cutoff cf with
// resonance res in 0..1.
func Moogladder(sig Sig, cf, res Val, opt ...D) Sig {
	args := append(vals(sig, cf, res), optD(opt, 0)...)
	return wrapSig(opcs("moogladder", args...))
}

// Moogvcf emulates the Moog VCF; res above 1 self-oscillates.
func Moogvcf(sig Sig, cf, res Val, opt ...D) Sig {
	args := append(vals(sig, cf, res), optD(opt, 1)...)
	return wrapSig(opcs("moogvcf", args...))
}
