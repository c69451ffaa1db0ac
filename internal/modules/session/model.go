// README: Conversation turns persisted per session.
package session

// Role values mirror the Gemini chat roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one utterance in a session's history. Model turns store the
// agent's raw structured reply so the conversation can be replayed into
// a new chat session verbatim.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
