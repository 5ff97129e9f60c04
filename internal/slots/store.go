package slots

import (
	"context"
	"encoding/json"
	"time"
)

// Record is the single result held by a slot.
type Record struct {
	SubmissionID string
	Payload      json.RawMessage
	ReceivedAt   time.Time
}

// Store holds one record per key. Put replaces the previous record wholesale.
type Store interface {
	Get(ctx context.Context, key string) (Record, error)
	Put(ctx context.Context, key string, record Record) error
}
