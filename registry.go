package csound

// registry.go — the opcode catalog.
//
// The catalog is a fixed table: one entry per cataloged opcode, carrying its
// external name, its ordered overload set, its declared output arity, whether
// it has engine-visible effects, and a one-line doc. It is fully constructed
// once (catalog.go) and immutable afterwards; nothing registers lazily and
// nothing is computed per call beyond resolution itself.
//
// register validates each declaration as it lands. Any defect — duplicate
// name, empty overload set, a repeating cycle that is empty, a wildcard in an
// output position, an output tuple whose arity disagrees with the binding's
// declared shape — panics with a *CatalogError. A malformed declaration is a
// bug in this package and must never be deferred to call time.

import "sort"

type opcodeEntry struct {
	name   string
	sigs   []Signature
	nouts  int // output arity of the binding's tuple shape; 0 for effects
	effect bool
	doc    string
}

type catalogBuilder struct {
	byName map[string]*opcodeEntry
}

func newCatalogBuilder() *catalogBuilder {
	return &catalogBuilder{byName: map[string]*opcodeEntry{}}
}

func (c *catalogBuilder) register(e opcodeEntry) {
	if e.name == "" {
		panic(&CatalogError{Opcode: e.name, Msg: "empty opcode name"})
	}
	if _, dup := c.byName[e.name]; dup {
		panic(&CatalogError{Opcode: e.name, Msg: "duplicate registration"})
	}
	if len(e.sigs) == 0 {
		panic(&CatalogError{Opcode: e.name, Msg: "no signatures declared"})
	}
	for _, sg := range e.sigs {
		if !sg.Ins.valid() {
			panic(&CatalogError{Opcode: e.name, Msg: "repeating tail declared with an empty cycle"})
		}
		if len(sg.Outs) != e.nouts {
			panic(&CatalogError{Opcode: e.name, Msg: "signature output arity disagrees with declared tuple shape"})
		}
		for _, r := range sg.Outs {
			if !r.concrete() {
				panic(&CatalogError{Opcode: e.name, Msg: "output rate must be concrete, got " + r.String()})
			}
		}
		if e.effect && len(sg.Outs) != 0 {
			panic(&CatalogError{Opcode: e.name, Msg: "effectful opcode must not declare outputs"})
		}
	}
	c.byName[e.name] = &e
}

// lookup fetches a catalog entry; a miss is a defect in this package's own
// bindings, since callers never pass opcode names.
func lookup(name string) *opcodeEntry {
	e, ok := catalog[name]
	if !ok {
		panic(&CatalogError{Opcode: name, Msg: "not in catalog"})
	}
	return e
}

// Opcodes returns the sorted names of every cataloged opcode.
func Opcodes() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
