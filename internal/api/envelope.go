package api

import (
	"encoding/json"

	"github.com/soapdogg/travel-personal-assistant/internal/domain"
)

// Store-backed operations return their result as a JSON string so failures
// can be represented without aborting the invocation. The transport layer
// encodes the returned string once more as an opaque scalar, so callers parse
// twice to reach the domain object. Field order below matches the legacy
// wire format.

type failureEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type userView struct {
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type authEnvelope struct {
	Success bool     `json:"success"`
	User    userView `json:"user"`
}

type workoutsEnvelope struct {
	Success  bool                 `json:"success"`
	Workouts []domain.WorkoutView `json:"workouts"`
}

type saveEnvelope struct {
	Success   bool   `json:"success"`
	WorkoutID string `json:"workoutId"`
}

// encodeEnvelope serializes any envelope to the domain JSON string.
func encodeEnvelope(env any) (string, error) {
	encoded, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// failure builds the soft-failure string for a store-backed operation.
func failure(message string) (string, error) {
	return encodeEnvelope(failureEnvelope{Success: false, Error: message})
}
