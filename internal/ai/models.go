package ai

// CollectedData holds the facts the agent has gathered so far. Empty
// string means "not collected yet"; the agent fills fields as the
// conversation progresses.
type CollectedData struct {
	// Name is the customer's name, used for the roster lookup.
	Name string `json:"name"`

	// Car is the vehicle make and model.
	Car string `json:"car"`

	// Location is the customer's current location as they described it.
	Location string `json:"location"`

	// Issue is the customer's description of the problem.
	Issue string `json:"issue"`

	// PolicyLevel is the coverage tier (basic/premium/platinum) looked
	// up by name, or empty until the name is known.
	PolicyLevel string `json:"policy_level"`
}

// AgentResult captures the structured output from the AI model.
type AgentResult struct {
	// VoiceResponse is the text to speak to the customer.
	VoiceResponse string `json:"voice_response"`

	// IsCovered is false until all data is collected and coverage is
	// confirmed against the policy document.
	IsCovered bool `json:"is_covered"`

	// ConversationComplete is true only when the customer confirms they
	// need nothing else.
	ConversationComplete bool `json:"conversation_complete"`

	CollectedData CollectedData `json:"collected_data"`
}

// Complete reports whether location and issue carry usable values, i.e.
// the dispatch engine can be consulted.
func (r *AgentResult) Complete() bool {
	return trimmed(r.CollectedData.Location) && trimmed(r.CollectedData.Issue)
}

func trimmed(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' && c != '\n' {
			return true
		}
	}
	return false
}
