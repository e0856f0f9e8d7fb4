package csound

import (
	"strings"
	"testing"
)

// A scratch entry for resolver tests, independent of the real catalog.
func testEntry(name string, sigs ...Signature) *opcodeEntry {
	return &opcodeEntry{name: name, sigs: sigs, nouts: len(sigs[0].Outs)}
}

func Test_Resolve_first_match_wins(t *testing.T) {
	e := testEntry("osc",
		Signature{Outs: outs(Ar), Ins: Slots(Ar, Ir)},
		Signature{Outs: outs(Kr), Ins: Slots(Kr, Ir)},
	)

	// Exact audio args take the first signature.
	n, err := resolveOpcode(e, vals(testSig(Ar), N(1)))
	if err != nil {
		t.Fatal(err)
	}
	if n.rate != Ar {
		t.Fatalf("resolved rate = %s, want a", n.rate)
	}

	// Control args skip to the second.
	n, err = resolveOpcode(e, vals(C(1), N(1)))
	if err != nil {
		t.Fatal(err)
	}
	if n.rate != Kr {
		t.Fatalf("resolved rate = %s, want k", n.rate)
	}
}

func Test_Resolve_declaration_order_is_priority(t *testing.T) {
	// Both signatures accept (k, i) via the x wildcard; the first listed
	// must win even though the second is an exact match.
	e := testEntry("amb",
		Signature{Outs: outs(Ar), Ins: Slots(Xr, Ir)},
		Signature{Outs: outs(Kr), Ins: Slots(Kr, Ir)},
	)
	n, err := resolveOpcode(e, vals(C(1), N(2)))
	if err != nil {
		t.Fatal(err)
	}
	if n.rate != Ar {
		t.Fatalf("first-match-wins violated: got %s, want a", n.rate)
	}
}

func Test_Resolve_no_match_reports_opcode_and_rates(t *testing.T) {
	e := testEntry("osc",
		Signature{Outs: outs(Ar), Ins: Slots(Ar, Ir)},
	)
	_, err := resolveOpcode(e, vals(Text("nope"), N(1)))
	wantErrContains(t, err, `"osc"`)
	wantErrContains(t, err, "(S, i)")
	wantErrContains(t, err, "no declared signature matches")

	re, ok := err.(*ResolveError)
	if !ok {
		t.Fatalf("want *ResolveError, got %T", err)
	}
	if re.Opcode != "osc" || !sameRates(re.Rates, []Rate{Sr, Ir}) {
		t.Fatalf("ResolveError fields wrong: %+v", re)
	}
}

func Test_Resolve_arg_count_must_align(t *testing.T) {
	e := testEntry("fix",
		Signature{Outs: outs(Ar), Ins: Slots(Ar, Ir, Ir)},
	)
	// Shorter than the prefix fails.
	if _, err := resolveOpcode(e, vals(testSig(Ar), N(0))); err == nil {
		t.Fatal("short call should not resolve")
	}
	// Surplus with no repeating tail fails.
	if _, err := resolveOpcode(e, vals(testSig(Ar), N(0), N(0), N(0))); err == nil {
		t.Fatal("surplus call should not resolve")
	}
}

func Test_Resolve_repeating_pair_alignment(t *testing.T) {
	// outch-style: any number of (k, a) pairs.
	e := lookup("outch")
	args := vals(
		C(1), testSig(Ar),
		C(2), testSig(Ar),
		C(3), testSig(Ar),
	)
	n, err := resolveOpcode(e, args)
	if err != nil {
		t.Fatal(err)
	}
	if len(n.args) != 6 {
		t.Fatalf("resolved input length = %d, want 6", len(n.args))
	}

	// A half pair misaligns: slot 3 is audio, argument is control.
	if _, err := resolveOpcode(e, vals(C(1), testSig(Ar), C(2), C(2))); err == nil {
		t.Fatal("misaligned pair tail should not resolve")
	}
}

func Test_Resolve_table_scenario(t *testing.T) {
	// A control-rate index with a table handle and two default init
	// operands picks the control signature and yields a control result.
	got := Table(C(0.5), TabNum(1))
	if got.Rate() != Kr {
		t.Fatalf("table with control index resolved %s, want k", got.Rate())
	}

	// An init-rate index picks the init signature.
	if got := Table(N(3), TabNum(1)); got.Rate() != Ir {
		t.Fatalf("table with init index resolved %s, want i", got.Rate())
	}

	// An audio index picks the audio signature.
	if got := Table(testSig(Ar), TabNum(1)); got.Rate() != Ar {
		t.Fatalf("table with audio index resolved %s, want a", got.Rate())
	}
}

func Test_Resolve_binding_panics_with_resolve_error(t *testing.T) {
	re := mustPanicResolve(t, func() {
		// tone requires an audio input; a control signal cannot serve.
		Tone(C(1), C(500))
	})
	if re.Opcode != "tone" {
		t.Fatalf("panic names opcode %q, want tone", re.Opcode)
	}
	if !strings.Contains(re.Error(), "(k, k, i)") {
		t.Fatalf("panic should carry supplied rates, got %q", re.Error())
	}
}

// testSig fabricates a signal of a given concrete rate without touching the
// catalog, for feeding the resolver directly.
func testSig(r Rate) Sig {
	return Sig{constExpr(0, r)}
}
