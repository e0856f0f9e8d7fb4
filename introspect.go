package csound

// introspect.go — reflective access to the catalog.
//
// Describe exposes a cataloged opcode as plain data: its doc line, declared
// tuple arity, effectfulness, and the overload set rendered in manual style
// ("a oscil (x, x, i, i)"). The REPL and the YAML export are the consumers;
// nothing here can mutate the catalog.

import "strings"

// OpcodeInfo is the externally visible description of one catalog entry.
type OpcodeInfo struct {
	Name       string
	Doc        string
	Outputs    int
	Effect     bool
	Signatures []string
}

// Describe returns the description of the named opcode, or ok=false if it is
// not cataloged.
func Describe(name string) (OpcodeInfo, bool) {
	e, ok := catalog[name]
	if !ok {
		return OpcodeInfo{}, false
	}
	return describeEntry(e), true
}

func describeEntry(e *opcodeEntry) OpcodeInfo {
	info := OpcodeInfo{
		Name:    e.name,
		Doc:     e.doc,
		Outputs: e.nouts,
		Effect:  e.effect,
	}
	for _, sg := range e.sigs {
		info.Signatures = append(info.Signatures, formatSig(e.name, sg))
	}
	return info
}

// formatSig renders one signature the way the reference manual writes
// prototypes: output rates, name, parenthesized input rates with "..." for a
// repeating tail. Built from the signature's parts, so a multi-output tuple
// keeps its full rate list ahead of the name.
func formatSig(name string, sg Signature) string {
	var b strings.Builder
	if len(sg.Outs) == 0 {
		b.WriteByte('-')
	}
	for i, r := range sg.Outs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(sg.Ins.String())
	return b.String()
}
