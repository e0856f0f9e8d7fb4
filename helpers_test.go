package csound

import (
	"strings"
	"testing"
)

func wantErrContains(t *testing.T, err error, sub string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", sub)
	}
	if !strings.Contains(err.Error(), sub) {
		t.Fatalf("error %q does not contain %q", err.Error(), sub)
	}
}

// mustPanicCatalog runs fn and fails unless it panics with a *CatalogError
// containing sub.
func mustPanicCatalog(t *testing.T, sub string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected *CatalogError panic containing %q, got no panic", sub)
		}
		ce, ok := r.(*CatalogError)
		if !ok {
			t.Fatalf("expected *CatalogError, got %#v", r)
		}
		if !strings.Contains(ce.Error(), sub) {
			t.Fatalf("catalog error %q does not contain %q", ce.Error(), sub)
		}
	}()
	fn()
}

// mustPanicResolve runs fn and fails unless it panics with a *ResolveError.
func mustPanicResolve(t *testing.T, fn func()) *ResolveError {
	t.Helper()
	var got *ResolveError
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected *ResolveError panic, got no panic")
			}
			re, ok := r.(*ResolveError)
			if !ok {
				t.Fatalf("expected *ResolveError, got %#v", r)
			}
			got = re
		}()
		fn()
	}()
	return got
}

func sameRates(a, b []Rate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
