package slots

import (
	"context"
	"errors"
	"time"

	"resume-feedback/internal/analysis"
)

// Bound is a Store pinned to one key, as used by a single session.
type Bound struct {
	store Store
	key   string
	now   func() time.Time
}

// Bind pins store to key.
func Bind(store Store, key string) *Bound {
	return &Bound{store: store, key: key, now: time.Now}
}

// Load returns the payload held by the slot. ok is false when the slot is empty.
func (b *Bound) Load(ctx context.Context) (analysis.Payload, bool, error) {
	record, err := b.store.Get(ctx, b.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return analysis.Payload{}, false, nil
		}
		return analysis.Payload{}, false, err
	}
	payload, err := analysis.Decode(record.Payload)
	if err != nil {
		return analysis.Payload{}, false, err
	}
	return payload, true, nil
}

// Replace overwrites the slot with payload.
func (b *Bound) Replace(ctx context.Context, submissionID string, payload analysis.Payload) error {
	return b.store.Put(ctx, b.key, Record{
		SubmissionID: submissionID,
		Payload:      payload.Raw,
		ReceivedAt:   b.now().UTC(),
	})
}
