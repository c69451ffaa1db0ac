// README: Loads the policy coverage document and customer roster from JSON files.
package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Store holds the coverage document and roster verbatim plus a parsed
// customer list. Loaded once at startup; read-only afterwards.
type Store struct {
	policyJSON    string
	customersJSON string
	customers     []Customer
}

// Load reads both documents. A missing or malformed file is a fatal
// configuration error; the agent must not run with a partial policy.
func Load(policyFile, customersFile string) (*Store, error) {
	policyRaw, err := os.ReadFile(policyFile)
	if err != nil {
		return nil, fmt.Errorf("policy: read %s: %w", policyFile, err)
	}
	if !json.Valid(policyRaw) {
		return nil, fmt.Errorf("policy: %s is not valid JSON", policyFile)
	}

	customersRaw, err := os.ReadFile(customersFile)
	if err != nil {
		return nil, fmt.Errorf("policy: read %s: %w", customersFile, err)
	}
	var customers []Customer
	if err := json.Unmarshal(customersRaw, &customers); err != nil {
		return nil, fmt.Errorf("policy: parse %s: %w", customersFile, err)
	}

	return &Store{
		policyJSON:    string(policyRaw),
		customersJSON: string(customersRaw),
		customers:     customers,
	}, nil
}

// PolicyJSON returns the raw coverage document for prompt injection.
func (s *Store) PolicyJSON() string {
	return s.policyJSON
}

// CustomersJSON returns the raw roster for prompt injection.
func (s *Store) CustomersJSON() string {
	return s.customersJSON
}

// LookupLevel returns the policy level for a customer name
// (case-insensitive). Unknown customers default to "basic".
func (s *Store) LookupLevel(name string) string {
	for _, c := range s.customers {
		if strings.EqualFold(c.Name, name) {
			return c.PolicyLevel
		}
	}
	return "basic"
}
