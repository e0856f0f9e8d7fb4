package csound

import "testing"

func Test_Siglist_builders(t *testing.T) {
	s := Exactly(3, Ir)
	if s.Repeats() || s.MinLen() != 3 {
		t.Fatalf("Exactly(3, Ir) shape wrong: %v", s)
	}
	for i := 0; i < 3; i++ {
		if r, ok := s.slotAt(i); !ok || r != Ir {
			t.Fatalf("Exactly slot %d = %s ok=%v", i, r, ok)
		}
	}
	if _, ok := s.slotAt(3); ok {
		t.Fatal("finite sequence should have no slot past its end")
	}

	rp := Repeat(Kr, Ar)
	if !rp.Repeats() || rp.MinLen() != 0 {
		t.Fatalf("Repeat(Kr, Ar) shape wrong: %v", rp)
	}
	want := []Rate{Kr, Ar, Kr, Ar, Kr, Ar}
	for i, w := range want {
		if r, ok := rp.slotAt(i); !ok || r != w {
			t.Fatalf("Repeat slot %d = %s, want %s", i, r, w)
		}
	}

	pr := PrefixRepeat([]Rate{Sr, Ir}, Kr)
	if r, _ := pr.slotAt(0); r != Sr {
		t.Fatal("prefix slot 0 should be S")
	}
	if r, _ := pr.slotAt(1); r != Ir {
		t.Fatal("prefix slot 1 should be i")
	}
	for i := 2; i < 6; i++ {
		if r, ok := pr.slotAt(i); !ok || r != Kr {
			t.Fatalf("repeating slot %d = %s ok=%v", i, r, ok)
		}
	}
}

func Test_Siglist_empty_repeat_is_invalid(t *testing.T) {
	if Repeat().valid() {
		t.Fatal("empty repeating cycle must be invalid")
	}
	if !Slots(Ar, Ir).valid() {
		t.Fatal("finite sequence must be valid")
	}
}

// Every cataloged signature satisfies the structural invariant: if a
// repeating tail is declared it is non-empty, and it is always at the tail
// (the representation allows nothing else, so checking validity covers it).
func Test_Siglist_catalog_structural_invariant(t *testing.T) {
	for name, e := range catalog {
		for i, sg := range e.sigs {
			if !sg.Ins.valid() {
				t.Errorf("opcode %q signature %d has an empty repeating tail", name, i)
			}
		}
	}
}

func Test_Siglist_strings(t *testing.T) {
	got := PrefixRepeat([]Rate{Sr, Ir}, Kr).String()
	if got != "(S, i, k ...)" {
		t.Fatalf("InSeq string = %q", got)
	}
	sg := Signature{Outs: outs(Ar, Ar), Ins: Slots(Sr, Ir)}
	if sg.String() != "a, a (S, i)" {
		t.Fatalf("Signature string = %q", sg.String())
	}
	eff := Signature{Ins: Repeat(Kr, Ar)}
	if eff.String() != "- (k, a ...)" {
		t.Fatalf("effect Signature string = %q", eff.String())
	}
}
