package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash"

// GeminiProvider implements AgentProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client. policyJSON and
// customersJSON are injected into the system instruction so the model can
// check coverage and look up policy levels without extra round trips.
func NewGeminiProvider(ctx context.Context, apiKey, policyJSON, customersJSON string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(buildSystemInstruction(policyJSON, customersJSON))},
	}

	// Force JSON output matching the agent schema so parsing never has to
	// guess at free-form text.
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = agentResponseSchema()
	model.SetTemperature(0.4)

	return &GeminiProvider{client: client, model: model}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ProcessTurn replays the conversation history into a chat session and
// sends the new customer message.
func (p *GeminiProvider) ProcessTurn(ctx context.Context, history []Turn, userText string) (*AgentResult, error) {
	cs := p.model.StartChat()
	cs.History = make([]*genai.Content, 0, len(history))
	for _, t := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  t.Role,
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(userText))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Schema mode should return bare JSON; strip markdown fences anyway.
	cleanJSON := cleanJSONString(responseText.String())

	var result AgentResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &result, nil
}

// agentResponseSchema mirrors the AgentResult shape for Gemini's native
// structured output.
func agentResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"voice_response": {
				Type:        genai.TypeString,
				Description: "The text to speak to the customer",
			},
			"is_covered": {
				Type:        genai.TypeBoolean,
				Description: "Whether the issue is covered (false until all data collected and checked)",
			},
			"conversation_complete": {
				Type:        genai.TypeBoolean,
				Description: "True only when the customer confirms they need nothing else",
			},
			"collected_data": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":         {Type: genai.TypeString, Description: "Customer's name or empty string if not collected yet"},
					"car":          {Type: genai.TypeString, Description: "Vehicle model or empty string if not collected yet"},
					"location":     {Type: genai.TypeString, Description: "Current location or empty string if not collected yet"},
					"issue":        {Type: genai.TypeString, Description: "Description of the issue or empty string if not collected yet"},
					"policy_level": {Type: genai.TypeString, Description: "Policy level (basic/premium/platinum) looked up by name, or empty string"},
				},
				Required: []string{"name", "car", "location", "issue", "policy_level"},
			},
		},
		Required: []string{"voice_response", "is_covered", "conversation_complete", "collected_data"},
	}
}

// buildSystemInstruction constructs the instructions for the AI.
func buildSystemInstruction(policyJSON, customersJSON string) string {
	if policyJSON == "" {
		policyJSON = "{}"
	}
	if customersJSON == "" {
		customersJSON = "[]"
	}

	return fmt.Sprintf(`Role: You are the voice agent for a roadside assistance service. A distressed
vehicle owner is on the line. Be calm, brief and reassuring.

DATA COLLECTION GATE (MUST READ):
You MUST collect ALL FOUR facts before checking coverage:
1. [ ] Customer name.
2. [ ] Vehicle (make and model).
3. [ ] Current location.
4. [ ] Description of the issue.
Ask for missing facts one or two at a time, naturally. Record each fact in
"collected_data" as soon as the customer states it; use "" for facts not
yet collected. Never invent a value.

POLICY LOOKUP:
- Once the name is known, look the customer up in the Customer Roster below
  and record their "policy_level". Customers not in the roster are "basic".
- Coverage is determined ONLY by the Policy Coverage document below: match
  the customer's policy level against the kind of issue they describe.
- Set "is_covered": true ONLY when all four facts are collected AND the
  policy document covers the issue for that level. Until then it is false.
- If the issue is not covered, say so politely and suggest they arrange
  service privately. Keep "is_covered": false.

CONVERSATION CLOSE:
- After help is dispatched, ask if they need anything else.
- Set "conversation_complete": true only when the customer confirms they
  are done.

Policy Coverage document:
%s

Customer Roster:
%s
`, policyJSON, customersJSON)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
