package schema

import (
	"encoding/json"
	"testing"
)

func TestEmbeddedSchemasParse(t *testing.T) {
	entries, err := FS.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded FS: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no schema files embedded")
	}

	for _, entry := range entries {
		data, err := FS.ReadFile(entry.Name())
		if err != nil {
			t.Errorf("failed to read %s: %v", entry.Name(), err)
			continue
		}
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			t.Errorf("%s is not valid JSON: %v", entry.Name(), err)
		}
	}
}

func TestConfigSchemaPresent(t *testing.T) {
	if _, err := FS.ReadFile("config.schema.json"); err != nil {
		t.Errorf("config.schema.json not embedded: %v", err)
	}
}
