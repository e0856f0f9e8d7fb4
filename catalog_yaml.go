package csound

// catalog_yaml.go — YAML export of the catalog, for docs tooling.

import "gopkg.in/yaml.v3"

// CatalogEntry is the serialized form of one opcode description.
type CatalogEntry struct {
	Name       string   `yaml:"name"`
	Doc        string   `yaml:"doc,omitempty"`
	Outputs    int      `yaml:"outputs"`
	Effect     bool     `yaml:"effect,omitempty"`
	Signatures []string `yaml:"signatures,flow"`
}

// CatalogEntries returns the whole catalog as serializable descriptions,
// sorted by name.
func CatalogEntries() []CatalogEntry {
	names := Opcodes()
	entries := make([]CatalogEntry, 0, len(names))
	for _, n := range names {
		info, _ := Describe(n)
		entries = append(entries, CatalogEntry{
			Name:       info.Name,
			Doc:        info.Doc,
			Outputs:    info.Outputs,
			Effect:     info.Effect,
			Signatures: info.Signatures,
		})
	}
	return entries
}

// CatalogYAML marshals the catalog descriptions to YAML.
func CatalogYAML() ([]byte, error) {
	return yaml.Marshal(CatalogEntries())
}
