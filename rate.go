package csound

// rate.go — the rate vocabulary.
//
// Csound distinguishes values by how often they update: init-rate values are
// computed once at note start, control-rate once per control block, audio-rate
// once per sample frame, and strings never. Opcode signatures additionally use
// two wildcard classes: Xr ("x" in the reference manual), which a signature
// slot uses to accept either an audio- or a control-rate argument, and
// AnyRate, used by opcodes that are indifferent to the rate of an argument
// (e.g. trailing p-field arguments to schedule).
//
// Arguments always carry a concrete rate (Ir, Kr, Ar or Sr); the wildcards
// appear only in declared signature slots. There is no implicit coercion: an
// init-rate argument does not satisfy a control-rate slot.

// Rate classifies a value by its update frequency and kind.
type Rate uint8

const (
	Ir      Rate = iota // init-rate scalar, computed once
	Kr                  // control-rate signal
	Ar                  // audio-rate signal
	Sr                  // string
	Xr                  // slot wildcard: audio or control
	AnyRate             // slot wildcard: anything
)

var rateNames = [...]string{
	Ir:      "i",
	Kr:      "k",
	Ar:      "a",
	Sr:      "S",
	Xr:      "x",
	AnyRate: "*",
}

func (r Rate) String() string {
	if int(r) < len(rateNames) {
		return rateNames[r]
	}
	return "?"
}

// Accepts reports whether a signature slot declared at rate r matches an
// argument carrying the concrete rate arg.
func (r Rate) Accepts(arg Rate) bool {
	switch r {
	case AnyRate:
		return true
	case Xr:
		return arg == Ar || arg == Kr
	default:
		return r == arg
	}
}

// concrete reports whether r is a rate a value can actually carry,
// as opposed to a slot-only wildcard.
func (r Rate) concrete() bool {
	return r == Ir || r == Kr || r == Ar || r == Sr
}

// unifyRates picks the rate of an arithmetic combination: audio dominates
// control, control dominates init.
func unifyRates(a, b Rate) Rate {
	if a == Ar || b == Ar {
		return Ar
	}
	if a == Kr || b == Kr {
		return Kr
	}
	return Ir
}
