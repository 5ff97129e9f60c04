package slots

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// PGStore keeps slots in the result_slots table.
type PGStore struct {
	DB *sql.DB
}

func (s *PGStore) Put(ctx context.Context, key string, record Record) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(record.Payload) == 0 {
		return ErrEmptyPayload
	}
	receivedAt := record.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}
	const query = `
INSERT INTO result_slots (slot_key, submission_id, payload, received_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slot_key) DO UPDATE SET
  submission_id = EXCLUDED.submission_id,
  payload = EXCLUDED.payload,
  received_at = EXCLUDED.received_at`
	_, err := s.DB.ExecContext(ctx, query, key, record.SubmissionID, string(record.Payload), receivedAt)
	return err
}

func (s *PGStore) Get(ctx context.Context, key string) (Record, error) {
	const query = `
SELECT submission_id, payload, received_at
FROM result_slots
WHERE slot_key = $1
LIMIT 1`
	var record Record
	var payload []byte
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&record.SubmissionID, &payload, &record.ReceivedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	record.Payload = payload
	return record, nil
}
