package ai

import (
	"encoding/json"
	"testing"
)

func TestAgentResultComplete(t *testing.T) {
	tests := []struct {
		name string
		data CollectedData
		want bool
	}{
		{"both present", CollectedData{Location: "Oakland", Issue: "flat tire"}, true},
		{"missing location", CollectedData{Issue: "flat tire"}, false},
		{"missing issue", CollectedData{Location: "Oakland"}, false},
		{"whitespace only", CollectedData{Location: "  ", Issue: "\n"}, false},
		{"both empty", CollectedData{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &AgentResult{CollectedData: tt.data}
			if got := r.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAgentResultUnmarshal(t *testing.T) {
	raw := `{
		"voice_response": "Help is on the way.",
		"is_covered": true,
		"conversation_complete": false,
		"collected_data": {
			"name": "John Doe",
			"car": "Toyota Corolla",
			"location": "San Francisco, CA",
			"issue": "flat tire",
			"policy_level": "premium"
		}
	}`

	var r AgentResult
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !r.IsCovered || r.ConversationComplete {
		t.Errorf("flags wrong: %+v", r)
	}
	if r.CollectedData.Name != "John Doe" || r.CollectedData.PolicyLevel != "premium" {
		t.Errorf("collected data wrong: %+v", r.CollectedData)
	}
	if !r.Complete() {
		t.Errorf("expected Complete() = true")
	}
}

func TestCleanJSONString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}\n", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONString(tt.input); got != tt.want {
				t.Errorf("cleanJSONString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
