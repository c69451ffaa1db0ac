// README: Case service implements state transitions and persistence.
package cases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"roadside/internal/modules/dispatch"
	"roadside/internal/types"
)

var (
	ErrNotFound     = errors.New("case not found")
	ErrInvalidState = errors.New("invalid case state transition")
	ErrBadRequest   = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type OpenCommand struct {
	SessionID    types.ID
	CustomerName string
	Vehicle      string
	Location     string
	Issue        string
	PolicyLevel  string
	IsCovered    bool
}

// Open creates a new case in the open state and returns its ID.
func (s *Service) Open(ctx context.Context, cmd OpenCommand) (types.ID, error) {
	if cmd.SessionID == "" || cmd.Issue == "" {
		return "", ErrBadRequest
	}

	c := &Case{
		ID:           newID(),
		SessionID:    cmd.SessionID,
		CustomerName: cmd.CustomerName,
		Vehicle:      cmd.Vehicle,
		Location:     cmd.Location,
		Issue:        cmd.Issue,
		PolicyLevel:  cmd.PolicyLevel,
		IsCovered:    cmd.IsCovered,
		Status:       StatusOpen,
		CreatedAt:    time.Now(),
	}
	if err := s.store.Create(ctx, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

// RecordDispatch attaches the decision snapshot and marks the case
// dispatched. Valid from open and held.
func (s *Service) RecordDispatch(ctx context.Context, id types.ID, from Status, d dispatch.Decision) error {
	if !CanTransition(from, StatusDispatched) {
		return ErrInvalidState
	}
	ok, err := s.store.SetDecision(ctx, id, from, d)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	return nil
}

// Hold marks a case as awaiting manual dispatch (the engine returned no
// decision). Expected outcome, not an error path.
func (s *Service) Hold(ctx context.Context, id types.ID) error {
	ok, err := s.store.UpdateStatus(ctx, id, StatusOpen, StatusHeld)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	return nil
}

// Close ends a case from whichever non-terminal state it is in.
func (s *Service) Close(ctx context.Context, id types.ID, from Status) error {
	if !CanTransition(from, StatusClosed) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, id, from, StatusClosed)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	return nil
}

// Get returns a case by ID.
func (s *Service) Get(ctx context.Context, id types.ID) (*Case, error) {
	return s.store.Get(ctx, id)
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
