// README: Assist orchestrator: agent turn -> coverage -> dispatch -> session/case updates.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"roadside/internal/ai"
	"roadside/internal/modules/cases"
	"roadside/internal/modules/dispatch"
	"roadside/internal/modules/session"
	"roadside/internal/types"
)

// UIUpdate mirrors the frontend notification contract.
type UIUpdate struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// Response is the full agent reply surfaced to the transport layer.
// Pointer fields are absent (not empty) when the turn produced nothing
// for them, so callers can tell "no dispatch yet" from "empty dispatch".
type Response struct {
	VoiceResponse        string             `json:"voice_response"`
	UIUpdate             *UIUpdate          `json:"ui_update,omitempty"`
	CollectedData        *ai.CollectedData  `json:"collected_data,omitempty"`
	IsCovered            bool               `json:"is_covered"`
	DispatchDetails      *dispatch.Decision `json:"dispatch_details,omitempty"`
	ConversationComplete bool               `json:"conversation_complete"`
}

// HistoryStore is the slice of the session store this service needs.
type HistoryStore interface {
	History(ctx context.Context, id types.ID) ([]session.Turn, error)
	Append(ctx context.Context, id types.ID, turns ...session.Turn) error
}

// CaseRecorder is the slice of the case service this service needs.
type CaseRecorder interface {
	Open(ctx context.Context, cmd cases.OpenCommand) (types.ID, error)
	Hold(ctx context.Context, id types.ID) error
	RecordDispatch(ctx context.Context, id types.ID, from cases.Status, d dispatch.Decision) error
}

// Service wires the agent, the dispatch engine, session history and case
// persistence into the per-turn conversation flow.
type Service struct {
	agent      ai.AgentProvider
	dispatcher *dispatch.Service
	sessions   HistoryStore
	cases      CaseRecorder
}

func NewService(agent ai.AgentProvider, dispatcher *dispatch.Service, sessions HistoryStore, caseSvc CaseRecorder) *Service {
	return &Service{
		agent:      agent,
		dispatcher: dispatcher,
		sessions:   sessions,
		cases:      caseSvc,
	}
}

// ProcessMessage runs one conversation turn. Agent failures degrade to an
// apology response rather than an error; only history-store failures
// propagate.
func (s *Service) ProcessMessage(ctx context.Context, sessionID types.ID, userText string) (*Response, error) {
	history, err := s.sessions.History(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("assist: load history: %w", err)
	}

	result, err := s.agent.ProcessTurn(ctx, toAgentTurns(history), userText)
	if err != nil {
		log.Printf("agent error for session %s: %v", sessionID, err)
		return &Response{
			VoiceResponse: "I am having trouble processing that right now. Could you please repeat?",
			CollectedData: &ai.CollectedData{},
		}, nil
	}

	resp := &Response{
		VoiceResponse:        result.VoiceResponse,
		CollectedData:        &result.CollectedData,
		IsCovered:            result.IsCovered,
		ConversationComplete: result.ConversationComplete,
	}
	if strings.TrimSpace(resp.VoiceResponse) == "" {
		resp.VoiceResponse = "I am sorry, I didn't catch that."
	}

	if result.IsCovered && result.Complete() {
		s.handleDispatch(ctx, sessionID, result, resp)
	}

	if err := s.appendHistory(ctx, sessionID, userText, result); err != nil {
		return nil, fmt.Errorf("assist: append history: %w", err)
	}

	return resp, nil
}

// handleDispatch consults the decision engine and, when a garage is
// found, attaches the dispatch details and notification to the response
// and records the case. Case persistence failures are logged, not
// surfaced: the customer already has their answer.
func (s *Service) handleDispatch(ctx context.Context, sessionID types.ID, result *ai.AgentResult, resp *Response) {
	collected := result.CollectedData

	name := strings.TrimSpace(collected.Name)
	if name == "" {
		name = "Customer"
	}

	decision, ok := s.dispatcher.Decide(ctx, collected.Location, collected.Issue)

	caseID, caseErr := s.cases.Open(ctx, cases.OpenCommand{
		SessionID:    sessionID,
		CustomerName: collected.Name,
		Vehicle:      collected.Car,
		Location:     collected.Location,
		Issue:        collected.Issue,
		PolicyLevel:  collected.PolicyLevel,
		IsCovered:    result.IsCovered,
	})
	if caseErr != nil {
		log.Printf("case open failed for session %s: %v", sessionID, caseErr)
	}

	if !ok {
		// No rule or no capable garage: hold for manual dispatch.
		if caseErr == nil {
			if err := s.cases.Hold(ctx, caseID); err != nil {
				log.Printf("case hold failed for %s: %v", caseID, err)
			}
		}
		resp.VoiceResponse += " I could not arrange a garage automatically, so our team will contact you shortly to dispatch help."
		return
	}

	summary := dispatch.Summary(decision, name)
	resp.UIUpdate = &UIUpdate{
		Type:    "SMS_NOTIFICATION",
		Content: "Help is on the way!\n\n" + summary,
		Status:  "DISPATCHED",
	}
	resp.DispatchDetails = &decision

	serviceName := "tow truck"
	if decision.ServiceType == dispatch.ServiceRepairTruck {
		serviceName = "repair truck"
	}
	resp.VoiceResponse += fmt.Sprintf(" A %s from %s will arrive in approximately %s.",
		serviceName, decision.GarageName, decision.EstimatedArrival)

	if caseErr == nil {
		if err := s.cases.RecordDispatch(ctx, caseID, cases.StatusOpen, decision); err != nil {
			log.Printf("case dispatch record failed for %s: %v", caseID, err)
		}
	}
}

// appendHistory stores the customer turn and the agent's raw structured
// reply so the next turn replays the exact conversation.
func (s *Service) appendHistory(ctx context.Context, sessionID types.ID, userText string, result *ai.AgentResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.sessions.Append(ctx, sessionID,
		session.Turn{Role: session.RoleUser, Text: userText},
		session.Turn{Role: session.RoleModel, Text: string(raw)},
	)
}

func toAgentTurns(history []session.Turn) []ai.Turn {
	turns := make([]ai.Turn, len(history))
	for i, t := range history {
		turns[i] = ai.Turn{Role: t.Role, Text: t.Text}
	}
	return turns
}
