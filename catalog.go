package csound

// catalog.go — catalog construction.
//
// The whole opcode vocabulary is fixed and known at build time, so the
// catalog is built exactly once, when the package loads, and is read-only
// afterwards. Each family file contributes one registerXxxOpcodes function;
// buildCatalog runs them all against one builder and freezes the result. Any
// *CatalogError raised during registration escapes as an init-time panic —
// a malformed declaration is a defect in this package and must stop
// everything before the first call site runs.

var catalog = buildCatalog()

func buildCatalog() map[string]*opcodeEntry {
	c := newCatalogBuilder()

	registerOscOpcodes(c)
	registerEnvOpcodes(c)
	registerFilterOpcodes(c)
	registerDelayOpcodes(c)
	registerTableOpcodes(c)
	registerSfileOpcodes(c)
	registerRandOpcodes(c)
	registerIOOpcodes(c)
	registerConvOpcodes(c)

	return c.byName
}
