// README: Keyword classifier mapping free-text issue descriptions to categories.
package dispatch

import "strings"

// issueRules is an ordered list evaluated top to bottom, first match wins.
// The order is a tie-break policy: "flat tire and smoke" classifies as
// flat_tire because the tire rule comes first. Keep the order stable.
var issueRules = []struct {
	keywords []string
	category IssueCategory
}{
	{[]string{"flat", "tire", "puncture"}, IssueFlatTire},
	{[]string{"battery", "won't start", "dead"}, IssueBatteryDead},
	{[]string{"engine", "overheating", "smoke"}, IssueEngineFail},
	{[]string{"transmission", "gear"}, IssueTransmission},
	{[]string{"accident", "collision", "crash"}, IssueAccident},
}

// Classify maps an issue description to a category. It is total: input
// that matches no rule falls back to engine_failure, which conservatively
// routes unknown issues to towing.
func Classify(issue string) IssueCategory {
	lower := strings.ToLower(issue)
	for _, rule := range issueRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return IssueEngineFail
}
