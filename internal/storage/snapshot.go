package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
)

// SnapshotKey is the fixed key the whole ledger blob lives under.
const SnapshotKey = "discipline_protocol_v1"

// SnapshotStore persists the ledger aggregate as a single JSON blob in one
// SQLite row. There is no version field; forward compatibility comes from
// defaulting every field absent from (or mangled in) an older blob.
type SnapshotStore struct {
	db  *sql.DB
	key string
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db, key: SnapshotKey}
}

// Load reads the persisted snapshot. A missing row or a blob that fails to
// parse yields a fresh default ledger, never an error; errors are reserved
// for the database itself being unusable.
func (s *SnapshotStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	row := s.db.QueryRowContext(ctx, `SELECT body FROM snapshots WHERE key = ?`, s.key)

	var body []byte
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return ledger.New(), nil
		}
		return nil, fmt.Errorf("snapshot read: %w", err)
	}
	return decodeLedger(body), nil
}

// Save serializes the whole aggregate and replaces the persisted snapshot.
// It is called synchronously after every mutation; no batching, no debounce.
func (s *SnapshotStore) Save(ctx context.Context, l *ledger.Ledger) error {
	body, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP
	`, s.key, body)
	if err != nil {
		return fmt.Errorf("snapshot write: %w", err)
	}
	return nil
}

// decodeLedger rehydrates a blob field by field. Each field is decoded
// independently so that a missing field, or one of an unexpected type, falls
// back to its default instead of poisoning the whole aggregate. This is the
// additive-only migration scheme: old blobs stay readable forever.
func decodeLedger(body []byte) *ledger.Ledger {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return ledger.New()
	}

	l := ledger.New()
	field(raw, "points", &l.Points)
	field(raw, "xp", &l.XP)
	field(raw, "strikes", &l.Strikes)
	field(raw, "missions", &l.Missions)
	field(raw, "logs", &l.Logs)
	field(raw, "goals", &l.Goals)
	field(raw, "alarms", &l.Alarms)
	field(raw, "profile", &l.Profile)
	field(raw, "hardcoreMode", &l.HardcoreMode)
	field(raw, "lastResetDate", &l.LastResetDate)
	field(raw, "lastPunishmentDate", &l.LastPunishmentDate)

	if l.Points < 0 {
		l.Points = 0
	}
	if l.Logs == nil {
		l.Logs = []ledger.DailyLog{}
	}
	if l.Profile.Tone == "" {
		l.Profile.Tone = ledger.DefaultTone
	}
	return l
}

// field decodes one key into dst, leaving dst's default value on absence or
// type mismatch.
func field(raw map[string]json.RawMessage, key string, dst any) {
	v, ok := raw[key]
	if !ok || string(v) == "null" {
		return
	}
	_ = json.Unmarshal(v, dst)
}
