package event

import (
	"time"

	"vehicle/finder/internal/domain"
)

const SubmissionSettledType = "SubmissionSettled"

// SubmissionSettled is emitted once per submission that reached the
// recommendation endpoint, whatever the outcome.
type SubmissionSettled struct {
	ID          string                `json:"id"`
	Payload     domain.RequestPayload `json:"payload"`
	Status      string                `json:"status"`
	ResultCount int                   `json:"result_count"`
	TotalFound  *int64                `json:"total_found,omitempty"`
	Error       string                `json:"error,omitempty"`
	StartedAt   time.Time             `json:"started_at"`
	DurationMS  int64                 `json:"duration_ms"`
}

func (e *SubmissionSettled) EventType() string {
	return SubmissionSettledType
}

func (e *SubmissionSettled) EventValue() ([]byte, error) {
	return DefaultEventValue(e)
}
