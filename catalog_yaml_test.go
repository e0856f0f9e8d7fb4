package csound

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func Test_CatalogYAML_round_trips_entries(t *testing.T) {
	out, err := CatalogYAML()
	if err != nil {
		t.Fatal(err)
	}

	var entries []CatalogEntry
	if err := yaml.Unmarshal(out, &entries); err != nil {
		t.Fatalf("export does not parse back: %v", err)
	}
	if len(entries) != len(catalog) {
		t.Fatalf("exported %d entries, catalog has %d", len(entries), len(catalog))
	}

	byName := map[string]CatalogEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	osc, ok := byName["oscil"]
	if !ok {
		t.Fatal("export missing oscil")
	}
	if osc.Outputs != 1 || len(osc.Signatures) != 2 || osc.Doc == "" {
		t.Fatalf("oscil entry wrong: %+v", osc)
	}

	mp3, ok := byName["mp3in"]
	if !ok {
		t.Fatal("export missing mp3in")
	}
	if mp3.Outputs != 2 {
		t.Fatalf("mp3in outputs = %d, want 2", mp3.Outputs)
	}

	if !byName["outch"].Effect || byName["outch"].Outputs != 0 {
		t.Fatalf("outch entry wrong: %+v", byName["outch"])
	}
}
