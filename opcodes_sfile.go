package csound

// ---- sound-file input -------------------------------------------------------

func registerSfileOpcodes(c *catalogBuilder) {
	c.register(opcodeEntry{
		name: "soundin", nouts: 1,
		doc: "read a mono sound file without pitch control",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Sr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "diskin2", nouts: 2,
		doc: "read a stereo sound file from disk with pitch control",
		sigs: []Signature{
			{Outs: outs(Ar, Ar), Ins: Slots(Sr, Kr, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "mp3in", nouts: 2,
		doc: "read a stereo mp3 file",
		sigs: []Signature{
			{Outs: outs(Ar, Ar), Ins: Slots(Sr, Ir, Ir, Ir)},
		},
	})
	c.register(opcodeEntry{
		name: "loscil", nouts: 1,
		doc: "looping sample playback from a table",
		sigs: []Signature{
			{Outs: outs(Ar), Ins: Slots(Xr, Kr, Ir, Ir, Ir)},
		},
	})
}

// Soundin reads a mono sound file; the optional operands skip into the file
// and force a sample format.
func Soundin(file Str, opt ...D) Sig {
	args := append(vals(file), optD(opt, 0, 0)...)
	return wrapSig(opcs("soundin", args...))
}

// Diskin2 streams a stereo file from disk, transposed by pitch (1 = original
// speed).
func Diskin2(file Str, pitch Sig, opt ...D) (Sig, Sig) {
	args := append(vals(file, pitch), optD(opt, 0, 0)...)
	return sigPair(mopcs("diskin2", args...))
}

// Mp3in reads a stereo mp3 file, yielding the left and right channels.
func Mp3in(file Str, opt ...D) (Sig, Sig) {
	args := append(vals(file), optD(opt, 0, 0, 0)...)
	return sigPair(mopcs("mp3in", args...))
}

// Loscil plays the sample in fn in a loop, scaled by amp and transposed by
// cps relative to base.
func Loscil(amp Val, cps Sig, fn Tab, opt ...D) Sig {
	args := append(vals(amp, cps, fn), optD(opt, 1, 0)...)
	return wrapSig(opcs("loscil", args...))
}
