package csound

// multiout.go — expansion of multi-output calls.
//
// Opcodes with a tuple result (a stereo sound-file reader, a stereo reverb)
// resolve to one call node whose signature declares several output rates.
// Expansion splits that node into one port per declared output, each tagged
// with its rate and index. The port count always equals the declared arity —
// a disagreement between a binding's Go tuple shape and its signatures is
// rejected by register when the catalog is built, so expansion itself cannot
// fail.

// mopcs resolves a multi-output opcode and expands the call into its ports.
func mopcs(name string, args ...Val) []*expr {
	call := opcs(name, args...)
	ports := make([]*expr, len(call.outs))
	for i := range call.outs {
		ports[i] = portExpr(call, i)
	}
	return ports
}

// sigPair wraps the two ports of a stereo-output call.
func sigPair(ports []*expr) (Sig, Sig) {
	return wrapSig(ports[0]), wrapSig(ports[1])
}
