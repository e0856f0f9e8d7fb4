package csound

import (
	"strings"
	"testing"
)

func Test_Render_single_statement(t *testing.T) {
	b := &Block{}
	b.Do(Outs(
		Oscili(C(0.5), C(440), TabNum(1)),
		Oscili(C(0.5), C(442), TabNum(1)),
	))
	got := RenderBlock(b)
	want := "" +
		"a1 oscili 0.5, 440, 1, 0\n" +
		"a2 oscili 0.5, 442, 1, 0\n" +
		"outs a1, a2\n"
	if got != want {
		t.Fatalf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func Test_Render_shared_node_emitted_once(t *testing.T) {
	b := &Block{}
	sig := Oscili(C(0.5), C(440), TabNum(1))
	b.Do(Outs(sig, sig))
	got := RenderBlock(b)
	if strings.Count(got, "oscili") != 1 {
		t.Fatalf("shared oscillator emitted more than once:\n%s", got)
	}
	if !strings.Contains(got, "outs a1, a1") {
		t.Fatalf("both channels should reference the same identifier:\n%s", got)
	}
}

func Test_Render_multiout_call_once_with_two_idents(t *testing.T) {
	b := &Block{}
	l, r := Mp3in(Text("loop.mp3"))
	b.Do(Outs(l, r))
	got := RenderBlock(b)
	if !strings.Contains(got, `a1, a2 mp3in "loop.mp3", 0, 0, 0`) {
		t.Fatalf("mp3in line missing or wrong:\n%s", got)
	}
	if !strings.Contains(got, "outs a1, a2") {
		t.Fatalf("ports should map to the call's identifiers:\n%s", got)
	}
	if strings.Count(got, "mp3in") != 1 {
		t.Fatalf("multi-output call emitted more than once:\n%s", got)
	}
}

func Test_Render_effect_order_preserved(t *testing.T) {
	b := &Block{}
	b.Do(Printks(Text("first %f\\n"), N(1), C(1)))
	b.Do(Printks(Text("second %f\\n"), N(1), C(2)))
	b.Do(Seed(N(7)))
	got := RenderBlock(b)

	first := strings.Index(got, "first")
	second := strings.Index(got, "second")
	seed := strings.Index(got, "seed 7")
	if first < 0 || second < 0 || seed < 0 {
		t.Fatalf("missing statements:\n%s", got)
	}
	if !(first < second && second < seed) {
		t.Fatalf("effect order not preserved:\n%s", got)
	}
}

func Test_Render_inline_arithmetic_and_pfields(t *testing.T) {
	b := &Block{}
	cps := SigOf(P(4))
	b.Do(Out(Oscili(C(0.3), Mul(cps, C(2)), TabNum(1))))
	got := RenderBlock(b)
	if !strings.Contains(got, "a1 oscili 0.3, (p4 * 2), 1, 0") {
		t.Fatalf("arithmetic or p-field not inlined:\n%s", got)
	}
}

func Test_Render_lifted_call_keeps_identity(t *testing.T) {
	// Lifting an init-rate call result into signal positions must not
	// duplicate the call: both consumers reference the one emitted line.
	b := &Block{}
	length := Ftlen(TabNum(1))
	k := SigOf(length)
	if k.Rate() != Kr {
		t.Fatalf("lifted value rate = %s, want k", k.Rate())
	}
	b.Do(Out(Oscili(C(0.5), k, TabNum(1))))
	b.Do(Printks(Text("len %f\\n"), N(1), k))
	got := RenderBlock(b)
	if strings.Count(got, "ftlen") != 1 {
		t.Fatalf("lifted ftlen emitted more than once:\n%s", got)
	}
	if !strings.Contains(got, "a1 oscili 0.5, i1, 1, 0") {
		t.Fatalf("lift should render the call's identifier inline:\n%s", got)
	}
}

func Test_Render_instrument_and_orchestra(t *testing.T) {
	in := NewInstr(3)
	in.Do(Out(Oscili(C(0.5), C(220), TabNum(1))))
	got := RenderInstr(in)
	if !strings.HasPrefix(got, "instr 3\n") || !strings.HasSuffix(got, "endin\n") {
		t.Fatalf("instrument framing wrong:\n%s", got)
	}
	if !strings.Contains(got, "  a1 oscili") {
		t.Fatalf("instrument body should be indented:\n%s", got)
	}

	orc := RenderOrchestra(DefaultHeader(), in)
	for _, want := range []string{"sr = 44100", "ksmps = 32", "nchnls = 2", "0dbfs = 1", "instr 3"} {
		if !strings.Contains(orc, want) {
			t.Fatalf("orchestra missing %q:\n%s", want, orc)
		}
	}
}
