package csound

// ---- signal output, input, printing, scheduling -----------------------------
//
// Everything here but in/inch is effectful: the bindings return Effects and a
// Block sequences them (effect.go).

func registerIOOpcodes(c *catalogBuilder) {
	c.register(opcodeEntry{
		name: "out", nouts: 0, effect: true,
		doc: "write one audio signal to output channel 1",
		sigs: []Signature{
			{Ins: Slots(Ar)},
		},
	})
	c.register(opcodeEntry{
		name: "outs", nouts: 0, effect: true,
		doc: "write a stereo pair to output channels 1 and 2",
		sigs: []Signature{
			{Ins: Slots(Ar, Ar)},
		},
	})
	c.register(opcodeEntry{
		name: "outch", nouts: 0, effect: true,
		doc: "write signals to numbered output channels, any number of channel/signal pairs",
		sigs: []Signature{
			{Ins: Repeat(Kr, Ar)},
		},
	})
	c.register(opcodeEntry{
		name: "in", nouts: 1,
		doc: "read audio input channel 1",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots()},
		},
	})
	c.register(opcodeEntry{
		name: "inch", nouts: 1,
		doc: "read a numbered audio input channel",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Kr)},
		},
	})
	c.register(opcodeEntry{
		name: "printk", nouts: 0, effect: true,
		doc: "print a control value every itime seconds",
		sigs: []Signature{
			{Ins: Slots(Ir, Kr, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "printks", nouts: 0, effect: true,
		doc: "formatted print every itime seconds with control-rate operands",
		sigs: []Signature{
			{Ins: PrefixRepeat([]Rate{Sr, Ir}, Kr)},
		},
	})
	c.register(opcodeEntry{
		name: "fout", nouts: 0, effect: true,
		doc: "write audio signals to a file",
		sigs: []Signature{
			{Ins: PrefixRepeat([]Rate{Sr, Ir}, Ar)},
		},
	})
	c.register(opcodeEntry{
		name: "schedule", nouts: 0, effect: true,
		doc: "schedule a note; trailing p-fields pass through at any rate",
		sigs: []Signature{
			{Ins: PrefixRepeat([]Rate{Ir, Ir, Ir}, AnyRate)},
		},
	})
}

// Out writes sig to output channel 1.
func Out(sig Sig) Effect {
	return effOpcs("out", sig)
}

// Outs writes a stereo pair to channels 1 and 2.
func Outs(l, r Sig) Effect {
	return effOpcs("outs", l, r)
}

// OutPair is one channel-number/signal pair for Outch.
type OutPair struct {
	Chan Sig
	Sig  Sig
}

// Outch writes each pair's signal to its channel.
func Outch(pairs ...OutPair) Effect {
	args := make([]Val, 0, 2*len(pairs))
	for _, p := range pairs {
		args = append(args, p.Chan, p.Sig)
	}
	return effOpcs("outch", args...)
}

// In reads audio input channel 1.
func In() Sig {
	return wrapSig(opcs("in"))
}

// Inch reads the audio input channel numbered by ch.
func Inch(ch Sig) Sig {
	return wrapSig(opcs("inch", ch))
}

// Printk prints val every itime seconds, indented by ispace spaces.
func Printk(itime D, val Sig, opt ...D) Effect {
	args := append(vals(itime, val), optD(opt, 0)...)
	return effOpcs("printk", args...)
}

// Printks prints with a format string every itime seconds; the trailing
// operands fill the format's slots.
func Printks(format Str, itime D, ops ...Sig) Effect {
	args := vals(format, itime)
	for _, o := range ops {
		args = append(args, o)
	}
	return effOpcs("printks", args...)
}

// Fout writes the given signals to file in the given sample format.
func Fout(file Str, format D, sigs ...Sig) Effect {
	args := vals(file, format)
	for _, s := range sigs {
		args = append(args, s)
	}
	return effOpcs("fout", args...)
}

// Schedule queues instrument insnum to start at when for dur seconds; any
// further p-fields pass through untouched.
func Schedule(insnum, when, dur D, pfields ...Val) Effect {
	args := append(vals(insnum, when, dur), pfields...)
	return effOpcs("schedule", args...)
}
