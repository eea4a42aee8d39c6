package store

import "time"

// ExecutionStatus is the outcome of a phone execution attempt.
type ExecutionStatus string

const (
	ExecutionExecuting ExecutionStatus = "executing"
	ExecutionCompleted ExecutionStatus = "completed"
	ExecutionFailed    ExecutionStatus = "failed"
)

// PhoneExecutionRecord holds the most recent attempt only.
type PhoneExecutionRecord struct {
	AIID        string          `json:"aiId"`
	PhoneNumber string          `json:"phoneNumber"` // digits only
	Timestamp   time.Time       `json:"timestamp"`
	Status      ExecutionStatus `json:"status"`
	ExecutionID string          `json:"executionId,omitempty"`
	Message     string          `json:"message,omitempty"`
}
