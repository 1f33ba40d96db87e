package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownOperation aborts an invocation whose operation name is outside
// the supported set. It is a hard failure: no handler executes and nothing is
// enveloped.
var ErrUnknownOperation = errors.New("unknown operation")

// Event is the resolver invocation record supplied by the API layer. The
// operation name can arrive under three different fields depending on how the
// resolver was wired.
type Event struct {
	FieldName     string          `json:"fieldName"`
	Info          EventInfo       `json:"info"`
	OperationName string          `json:"operationName"`
	Arguments     json.RawMessage `json:"arguments"`
}

// EventInfo is the nested resolver descriptor.
type EventInfo struct {
	FieldName string `json:"fieldName"`
}

// Operation enumerates the gateway's dispatchable operations.
type Operation string

const (
	OpAuthenticateUser          Operation = "authenticateUser"
	OpGetLegacyWorkouts         Operation = "getLegacyWorkouts"
	OpSaveLegacyWorkout         Operation = "saveLegacyWorkout"
	OpGetWorkoutRecommendations Operation = "getWorkoutRecommendations"
	OpGetAIRecommendations      Operation = "getAIRecommendations"
	OpChat                      Operation = "chat"
)

// resolveOperation applies the ordered fallback chain for the operation name
// and rejects anything outside the closed set.
func resolveOperation(evt Event) (Operation, error) {
	name := evt.FieldName
	if name == "" {
		name = evt.Info.FieldName
	}
	if name == "" {
		name = evt.OperationName
	}

	switch op := Operation(name); op {
	case OpAuthenticateUser, OpGetLegacyWorkouts, OpSaveLegacyWorkout,
		OpGetWorkoutRecommendations, OpGetAIRecommendations, OpChat:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}
