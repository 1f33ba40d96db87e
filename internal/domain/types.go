// Package domain defines the records exchanged between the gateway and the
// legacy lifting-tracker storage and the model service.
package domain

import "context"

// Credential is the legacy user row keyed by username. The stored hash lives
// in the "password" attribute for compatibility with the original tracker.
type Credential struct {
	Username     string `dynamodbav:"username" json:"username"`
	PasswordHash string `dynamodbav:"password" json:"-"`
	CreatedAt    string `dynamodbav:"created_at" json:"created_at"`
}

// Set is one weight/reps entry within a workout.
type Set struct {
	Weight float64 `dynamodbav:"weight" json:"weight"`
	Reps   int     `dynamodbav:"reps" json:"reps"`
}

// WorkoutRecord is the write-side shape of a legacy workout row. Sets is
// always persisted as a JSON string; readers must accept older rows that hold
// a native list instead.
type WorkoutRecord struct {
	UserID    string `dynamodbav:"user_id"`
	WorkoutID string `dynamodbav:"workout_id"`
	Exercise  string `dynamodbav:"exercise"`
	Date      string `dynamodbav:"date"`
	Sets      string `dynamodbav:"sets"`
	CreatedAt string `dynamodbav:"created_at"`
}

// WorkoutView is the read-side projection returned to callers. Sets carries
// the normalized list, or the raw attribute value when it has an unexpected
// shape.
type WorkoutView struct {
	Exercise string `json:"exercise"`
	Date     string `json:"date"`
	Sets     any    `json:"sets"`
}

// Message is one turn of a model conversation.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock carries the text portion of a message turn.
type ContentBlock struct {
	Text string `json:"text"`
}

// CredentialRepository captures credential lookups. Get returns (nil, nil)
// when no row exists for the username.
type CredentialRepository interface {
	Get(ctx context.Context, username string) (*Credential, error)
}

// WorkoutRepository captures workout persistence operations. The gateway only
// ever lists and appends; rows are never updated or deleted.
type WorkoutRepository interface {
	ListByUser(ctx context.Context, userID string) ([]WorkoutView, error)
	Put(ctx context.Context, record WorkoutRecord) error
}
