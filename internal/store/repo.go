package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// AttemptEventData captures one graded answer.
type AttemptEventData struct {
	SessionID  string
	QuestionID string
	Kind       string
	Prompt     string
	Answer     string
	Score      int
	MaxScore   int
	Correct    bool
	Feedback   string
	TimeMs     int
}

// Attempt is a persisted attempt event.
type Attempt struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// AssignmentEventData captures the generation of one question set.
type AssignmentEventData struct {
	SetID         string
	StudentName   string
	StudentCode   string
	Language      string
	Seed          int64
	QuestionCount int
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequest is a persisted LLM request event.
type LLMRequest struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat aggregates LLM usage under one key (a purpose or a model).
type UsageStat struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events. All
// appends share one global sequence, so events of different types have a
// total order.
type EventRepo interface {
	// AppendAttempt records a graded answer.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// ListAttempts returns attempts in sequence order.
	ListAttempts(ctx context.Context, opts QueryOpts) ([]Attempt, error)

	// AppendAssignment records a generated question set.
	AppendAssignment(ctx context.Context, data AssignmentEventData) error

	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns LLM request events in sequence order.
	ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequest, error)

	// GetLLMRequest returns one LLM request event by sequence, or nil.
	GetLLMRequest(ctx context.Context, sequence int64) (*LLMRequest, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates token usage per model ID.
	LLMUsageByModel(ctx context.Context) ([]UsageStat, error)

	// PurgeAll deletes every event. Used by the reset command.
	PurgeAll(ctx context.Context) error
}
