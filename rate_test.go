package csound

import "testing"

func Test_Rate_accepts_exact_and_wildcards(t *testing.T) {
	cases := []struct {
		slot, arg Rate
		want      bool
	}{
		{Ar, Ar, true},
		{Kr, Kr, true},
		{Ir, Ir, true},
		{Sr, Sr, true},
		{Ar, Kr, false},
		{Kr, Ir, false}, // no implicit coercion of init values into control slots
		{Ir, Kr, false},
		{Xr, Ar, true},
		{Xr, Kr, true},
		{Xr, Ir, false},
		{Xr, Sr, false},
		{AnyRate, Ar, true},
		{AnyRate, Kr, true},
		{AnyRate, Ir, true},
		{AnyRate, Sr, true},
	}
	for _, c := range cases {
		if got := c.slot.Accepts(c.arg); got != c.want {
			t.Errorf("slot %s accepts %s = %v, want %v", c.slot, c.arg, got, c.want)
		}
	}
}

func Test_Rate_names(t *testing.T) {
	if Ar.String() != "a" || Kr.String() != "k" || Ir.String() != "i" || Sr.String() != "S" {
		t.Fatalf("unexpected rate names: %s %s %s %s", Ar, Kr, Ir, Sr)
	}
	if Xr.String() != "x" || AnyRate.String() != "*" {
		t.Fatalf("unexpected wildcard names: %s %s", Xr, AnyRate)
	}
}

func Test_Rate_unify_for_arithmetic(t *testing.T) {
	if unifyRates(Ir, Kr) != Kr {
		t.Fatal("i+k should be k")
	}
	if unifyRates(Kr, Ar) != Ar {
		t.Fatal("k+a should be a")
	}
	if unifyRates(Ir, Ir) != Ir {
		t.Fatal("i+i should be i")
	}
	if got := Add(C(1), Oscil(C(1), C(440), TabNum(1))).Rate(); got != Ar {
		t.Fatalf("k + a signal should be audio, got %s", got)
	}
}
