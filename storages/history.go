package storages

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/reusee/fash/cmds"
	"github.com/reusee/fash/configs"
	"github.com/reusee/fash/logs"
	"github.com/reusee/fash/vars"
	_ "modernc.org/sqlite"
)

const (
	StatusActive = "active"
	StatusEnded  = "ended"
	StatusFailed = "failed"
)

type Entry struct {
	Round int
	Role  string
	Text  string
}

// Recorder persists the transcript of sessions
type Recorder interface {
	BeginSession(ctx context.Context, sessionID string, task string) error
	Record(ctx context.Context, sessionID string, round int, entries []Entry) error
	EndSession(ctx context.Context, sessionID string, status string) error
	Close() error
}

var historyFlag = cmds.Var[string]("-history", "SQLite file recording session transcripts")

// HistoryPath is the database file, empty to disable recording
type HistoryPath string

func (Module) HistoryPath(
	loader configs.Loader,
) HistoryPath {
	return vars.FirstNonZero(
		HistoryPath(*historyFlag),
		configs.First[HistoryPath](loader, "history_db"),
	)
}

type OpenRecorder func() (Recorder, error)

func (Module) OpenRecorder(
	path HistoryPath,
	logger logs.Logger,
) OpenRecorder {
	return func() (Recorder, error) {
		if path == "" {
			return NoopRecorder, nil
		}
		history, err := OpenHistory(string(path))
		if err != nil {
			return nil, err
		}
		logger.Info("history", "path", path)
		return history, nil
	}
}

type noopRecorder struct{}

// NoopRecorder records nothing
var NoopRecorder Recorder = noopRecorder{}

func (noopRecorder) BeginSession(context.Context, string, string) error { return nil }

func (noopRecorder) Record(context.Context, string, int, []Entry) error { return nil }

func (noopRecorder) EndSession(context.Context, string, string) error { return nil }

func (noopRecorder) Close() error { return nil }

// History is a Recorder backed by SQLite
type History struct {
	db *sql.DB
}

var _ Recorder = new(History)

func OpenHistory(path string) (*History, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)",
		path,
	))
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &History{
		db: db,
	}, nil
}

func (h *History) BeginSession(ctx context.Context, sessionID string, task string) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, task, started_at, status) VALUES (?, ?, ?, ?)`,
		sessionID, task, time.Now().UTC(), StatusActive,
	)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	return nil
}

func (h *History) Record(ctx context.Context, sessionID string, round int, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return withTx(ctx, h.db, func(tx Tx) error {
		now := time.Now().UTC()
		for _, entry := range entries {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO transcript_entries (session_id, seq, round, role, text, created_at)
				SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?, ?
				FROM transcript_entries WHERE session_id = ?`,
				sessionID, round, entry.Role, entry.Text, now, sessionID,
			)
			if err != nil {
				return fmt.Errorf("record entry: %w", err)
			}
		}
		return nil
	})
}

func (h *History) EndSession(ctx context.Context, sessionID string, status string) error {
	_, err := h.db.ExecContext(ctx,
		`UPDATE sessions SET ended_at = ?, status = ? WHERE session_id = ?`,
		time.Now().UTC(), status, sessionID,
	)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// Transcript returns the recorded entries of a session in order
func (h *History) Transcript(ctx context.Context, sessionID string) (ret []Entry, err error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT round, role, text FROM transcript_entries WHERE session_id = ? ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(&entry.Round, &entry.Role, &entry.Text); err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		ret = append(ret, entry)
	}
	return ret, rows.Err()
}

// SessionStatus returns the task and status of a recorded session
func (h *History) SessionStatus(ctx context.Context, sessionID string) (task string, status string, err error) {
	err = h.db.QueryRowContext(ctx,
		`SELECT task, status FROM sessions WHERE session_id = ?`,
		sessionID,
	).Scan(&task, &status)
	if err != nil {
		return "", "", fmt.Errorf("query session: %w", err)
	}
	return
}

func (h *History) Close() error {
	return h.db.Close()
}
