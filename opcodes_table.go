package csound

// ---- function tables --------------------------------------------------------

func registerTableOpcodes(c *catalogBuilder) {
	// The index may run at any rate and the result follows it; the audio
	// variant leads, init before control in the engine's documented order.
	tableSigs := []Signature{
		{Outs: outs(Ar), Ins: Slots(Ar, Ir, Ir, Ir)},
		{Outs: outs(Ir), Ins: Slots(Ir, Ir, Ir, Ir)},
		{Outs: outs(Kr), Ins: Slots(Kr, Ir, Ir, Ir)},
	}
	c.register(opcodeEntry{
		name: "table", nouts: 1,
		doc:  "table lookup at an index",
		sigs: tableSigs,
	})
	c.register(opcodeEntry{
		name: "tablei", nouts: 1,
		doc:  "table lookup with linear interpolation",
		sigs: tableSigs,
	})
	c.register(opcodeEntry{
		name: "table3", nouts: 1,
		doc:  "table lookup with cubic interpolation",
		sigs: tableSigs,
	})
	c.register(opcodeEntry{
		name: "ftgen", nouts: 1,
		doc: "generate a function table at init time; GEN arguments pass through at any rate",
		sigs: []Signature{
			{Outs: outs(Ir), Ins: PrefixRepeat([]Rate{Ir, Ir, Ir, Ir}, AnyRate)},
		},
	})
	c.register(opcodeEntry{
		name: "ftlen", nouts: 1,
		doc: "length of a stored function table",
		sigs: []Signature{
			{Outs: outs(Ir), Ins: Slots(Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "ftsr", nouts: 1,
		doc: "sampling rate recorded in a stored function table",
		sigs: []Signature{
			{Outs: outs(Ir), Ins: Slots(Ir)},
		},
	})
}

// Table reads fn at ndx. The result rate follows the index rate; optional
// operands select normalized indexing and wraparound.
func Table(ndx Val, fn Tab, opt ...D) Sig {
	args := append(vals(ndx, fn), optD(opt, 0, 0)...)
	return wrapSig(opcs("table", args...))
}

// Tablei is Table with linear interpolation between adjacent entries.
func Tablei(ndx Val, fn Tab, opt ...D) Sig {
	args := append(vals(ndx, fn), optD(opt, 0, 0)...)
	return wrapSig(opcs("tablei", args...))
}

// Table3 is Table with cubic interpolation.
func Table3(ndx Val, fn Tab, opt ...D) Sig {
	args := append(vals(ndx, fn), optD(opt, 0, 0)...)
	return wrapSig(opcs("table3", args...))
}

// Ftgen builds a function table at init time: requested number (0 asks the
// engine to assign one), creation time, size, GEN routine, then the GEN's own
// arguments at whatever rate it takes them.
func Ftgen(num, time, size, gen D, genArgs ...Val) Tab {
	args := append(vals(num, time, size, gen), genArgs...)
	return wrapTab(opcs("ftgen", args...))
}

// Ftlen returns the length of fn.
func Ftlen(fn Tab) D {
	return wrapD(opcs("ftlen", fn))
}

// Ftsr returns the sample rate stored with fn, or 0 if none.
func Ftsr(fn Tab) D {
	return wrapD(opcs("ftsr", fn))
}
