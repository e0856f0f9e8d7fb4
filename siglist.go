package csound

// siglist.go — input-rate sequences and signature declarations.
//
// An InSeq describes the rates an opcode variant expects of its inputs: a
// finite prefix of slots, optionally followed by a repeating cycle of slots
// at the tail. The cycle generalizes "any number of trailing init-rate
// arguments" to paired tails like outch's alternating channel/signal
// arguments. The cycle, when present, must be non-empty and is only ever at
// the tail — the representation cannot express anything else, and the
// registry rejects an empty cycle when a binding is declared.

import "strings"

// InSeq is an ordered sequence of input-rate slots: a finite prefix plus an
// optional repeating tail cycle.
type InSeq struct {
	prefix []Rate
	cycle  []Rate
	repeat bool
}

// Slots builds a finite sequence of the given rate slots.
func Slots(rs ...Rate) InSeq {
	return InSeq{prefix: rs}
}

// Exactly builds a finite sequence of n copies of rate r.
func Exactly(n int, r Rate) InSeq {
	rs := make([]Rate, n)
	for i := range rs {
		rs[i] = r
	}
	return InSeq{prefix: rs}
}

// Repeat builds a sequence that is nothing but an indefinitely repeating
// cycle of the given slots, e.g. Repeat(Kr, Ar) for outch's channel/signal
// pairs.
func Repeat(cycle ...Rate) InSeq {
	return InSeq{cycle: cycle, repeat: true}
}

// PrefixRepeat appends an indefinitely repeating cycle to a finite prefix.
func PrefixRepeat(prefix []Rate, cycle ...Rate) InSeq {
	return InSeq{prefix: prefix, cycle: cycle, repeat: true}
}

// Repeats reports whether the sequence has a repeating tail.
func (in InSeq) Repeats() bool { return in.repeat }

// MinLen is the number of arguments the sequence requires at minimum.
func (in InSeq) MinLen() int { return len(in.prefix) }

// slotAt returns the declared rate a call's i-th argument must satisfy.
// Beyond the prefix the repeating cycle supplies the slot; with no cycle
// there is no slot and ok is false.
func (in InSeq) slotAt(i int) (Rate, bool) {
	if i < len(in.prefix) {
		return in.prefix[i], true
	}
	if !in.repeat || len(in.cycle) == 0 {
		return 0, false
	}
	return in.cycle[(i-len(in.prefix))%len(in.cycle)], true
}

// valid reports whether the sequence is well formed: a declared repeating
// tail must be non-empty.
func (in InSeq) valid() bool {
	return !in.repeat || len(in.cycle) > 0
}

func (in InSeq) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, r := range in.prefix {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	if in.repeat {
		if len(in.prefix) > 0 {
			b.WriteString(", ")
		}
		for i, r := range in.cycle {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(r.String())
		}
		b.WriteString(" ...")
	}
	b.WriteByte(')')
	return b.String()
}

// Signature is one permitted (output rates, input-rate sequence) combination
// for an opcode. An opcode's overload set is an ordered []Signature; earlier
// entries take priority during resolution.
type Signature struct {
	Outs []Rate
	Ins  InSeq
}

// outs is declaration shorthand for an output-rate tuple.
func outs(rs ...Rate) []Rate { return rs }

func (s Signature) String() string {
	var b strings.Builder
	if len(s.Outs) == 0 {
		b.WriteByte('-')
	}
	for i, r := range s.Outs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	b.WriteByte(' ')
	b.WriteString(s.Ins.String())
	return b.String()
}
