// README: Chat quota errors and defaults.
package quota

import "errors"

// ErrExhausted is returned when a session has no chat tokens remaining
// for the current month.
var ErrExhausted = errors.New("chat quota exhausted")

// DefaultTokens is the number of agent turns granted per month.
const DefaultTokens = 200
