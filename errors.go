package csound

// errors.go — the two error kinds this layer can produce.
//
// A ResolveError means a call site supplied argument rates no declared
// signature of the opcode accepts. It is a programming error at the call
// site, reported the moment the call is constructed; nothing is retried and
// no partial node exists afterwards. The exported bindings surface it as a
// panic (misusing a binding is on par with indexing out of range); the
// resolver itself returns it, so tools and tests can exercise the failure
// path without recover.
//
// A CatalogError means a binding declaration itself is malformed — duplicate
// name, empty repeating cycle, output arity disagreeing with the declared
// tuple shape. That is a defect in this package, caught once while the
// catalog is built and fatal to initialization; it can never surface at call
// time.

import (
	"fmt"
	"strings"
)

// ResolveError reports that no signature of an opcode matches the argument
// rates supplied at a call site.
type ResolveError struct {
	Opcode string
	Rates  []Rate
}

func (e *ResolveError) Error() string {
	rs := make([]string, len(e.Rates))
	for i, r := range e.Rates {
		rs[i] = r.String()
	}
	return fmt.Sprintf("csound: cannot resolve opcode %q for argument rates (%s): no declared signature matches",
		e.Opcode, strings.Join(rs, ", "))
}

// CatalogError reports a malformed opcode binding declaration.
type CatalogError struct {
	Opcode string
	Msg    string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("csound: bad catalog entry %q: %s", e.Opcode, e.Msg)
}
