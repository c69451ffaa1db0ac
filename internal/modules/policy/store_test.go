package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	policyFile := writeFile(t, dir, "policy_coverage.json",
		`{"basic": {"flat_tire": true, "accident_damage": false}}`)
	customersFile := writeFile(t, dir, "customers.json",
		`[{"name": "John Doe", "vehicle": "Toyota Corolla", "policy_level": "premium"}]`)

	store, err := Load(policyFile, customersFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.PolicyJSON() == "" || store.CustomersJSON() == "" {
		t.Errorf("expected raw documents to be retained")
	}
	if got := store.LookupLevel("john doe"); got != "premium" {
		t.Errorf("LookupLevel(john doe) = %q, want premium", got)
	}
	if got := store.LookupLevel("Stranger"); got != "basic" {
		t.Errorf("LookupLevel(Stranger) = %q, want basic default", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	goodPolicy := writeFile(t, dir, "ok_policy.json", `{}`)
	goodCustomers := writeFile(t, dir, "ok_customers.json", `[]`)
	badJSON := writeFile(t, dir, "bad.json", `{"unterminated"`)

	tests := []struct {
		name           string
		policyFile     string
		customersFile  string
	}{
		{"missing policy", filepath.Join(dir, "absent.json"), goodCustomers},
		{"missing customers", goodPolicy, filepath.Join(dir, "absent.json")},
		{"malformed policy", badJSON, goodCustomers},
		{"malformed customers", goodPolicy, badJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.policyFile, tt.customersFile); err == nil {
				t.Errorf("Load succeeded, want error")
			}
		})
	}
}
