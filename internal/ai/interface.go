package ai

import "context"

// AgentProvider defines the contract for the conversational agent.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type AgentProvider interface {
	// ProcessTurn sends one customer utterance, with the prior
	// conversation, to the model and returns its structured reply.
	ProcessTurn(ctx context.Context, history []Turn, userText string) (*AgentResult, error)
}

// Turn is one prior utterance replayed into the chat session.
type Turn struct {
	Role string // "user" or "model"
	Text string
}
