package csound

import (
	"sort"
	"testing"
)

func Test_Registry_rejects_malformed_declarations(t *testing.T) {
	fresh := func() *catalogBuilder { return newCatalogBuilder() }

	mustPanicCatalog(t, "empty opcode name", func() {
		fresh().register(opcodeEntry{nouts: 1, sigs: []Signature{{Outs: outs(Ar), Ins: Slots()}}})
	})
	mustPanicCatalog(t, "no signatures", func() {
		fresh().register(opcodeEntry{name: "x", nouts: 1})
	})
	mustPanicCatalog(t, "empty cycle", func() {
		fresh().register(opcodeEntry{
			name: "x", nouts: 0, effect: true,
			sigs: []Signature{{Ins: Repeat()}},
		})
	})
	mustPanicCatalog(t, "must be concrete", func() {
		fresh().register(opcodeEntry{
			name: "x", nouts: 1,
			sigs: []Signature{{Outs: outs(Xr), Ins: Slots(Kr)}},
		})
	})
	mustPanicCatalog(t, "must not declare outputs", func() {
		fresh().register(opcodeEntry{
			name: "x", nouts: 1, effect: true,
			sigs: []Signature{{Outs: outs(Ar), Ins: Slots(Ar)}},
		})
	})

	c := fresh()
	c.register(opcodeEntry{name: "x", nouts: 1, sigs: []Signature{{Outs: outs(Ar), Ins: Slots()}}})
	mustPanicCatalog(t, "duplicate", func() {
		c.register(opcodeEntry{name: "x", nouts: 1, sigs: []Signature{{Outs: outs(Ar), Ins: Slots()}}})
	})
}

func Test_Registry_catalog_is_populated_and_sorted(t *testing.T) {
	names := Opcodes()
	if !sort.StringsAreSorted(names) {
		t.Fatal("Opcodes() must be sorted")
	}
	for _, want := range []string{"oscil", "table", "mp3in", "outch", "ftgen", "reverbsc", "schedule"} {
		if _, ok := catalog[want]; !ok {
			t.Errorf("catalog is missing %q", want)
		}
	}
}

func Test_Registry_describe(t *testing.T) {
	info, ok := Describe("oscil")
	if !ok {
		t.Fatal("oscil should be describable")
	}
	if info.Doc == "" || info.Outputs != 1 || info.Effect {
		t.Fatalf("oscil description wrong: %+v", info)
	}
	if len(info.Signatures) != 2 || info.Signatures[0] != "a oscil (x, x, i, i)" {
		t.Fatalf("oscil signatures = %v", info.Signatures)
	}

	// A multi-output tuple must keep its full rate list ahead of the name.
	info, ok = Describe("mp3in")
	if !ok || info.Outputs != 2 {
		t.Fatalf("mp3in should describe with 2 outputs: %+v", info)
	}
	if info.Signatures[0] != "a, a mp3in (S, i, i, i)" {
		t.Fatalf("mp3in signature = %q", info.Signatures[0])
	}
	info, ok = Describe("reverbsc")
	if !ok || info.Signatures[0] != "a, a reverbsc (a, a, k, k, i, i)" {
		t.Fatalf("reverbsc signature = %q", info.Signatures[0])
	}

	info, ok = Describe("outch")
	if !ok || !info.Effect {
		t.Fatalf("outch should be an effect: %+v", info)
	}
	if info.Signatures[0] != "- outch (k, a ...)" {
		t.Fatalf("outch signature = %q", info.Signatures[0])
	}

	if _, ok := Describe("no-such-opcode"); ok {
		t.Fatal("unknown name must not describe")
	}
}
