// README: Policy coverage document and customer roster types.
package policy

// Customer is one roster entry; policy level drives coverage checks.
type Customer struct {
	Name        string `json:"name"`
	Vehicle     string `json:"vehicle"`
	PolicyLevel string `json:"policy_level"`
}
