package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the analyzer writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS run_history (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at    INTEGER NOT NULL,
			finished_at   INTEGER NOT NULL,
			sheets_total  INTEGER,
			sheets_ok     INTEGER,
			sheets_failed INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_started ON run_history(started_at)`,

		`CREATE TABLE IF NOT EXISTS sheet_results (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			sheet         TEXT NOT NULL,
			status        TEXT NOT NULL,
			rows_total    INTEGER,
			rows_priced   INTEGER,
			mm_decision   TEXT,
			bol_decision  TEXT,
			macd_decision TEXT,
			rsi_decision  TEXT,
			stoc_decision TEXT,
			error         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sheet_ts ON sheet_results(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_sheet_name ON sheet_results(sheet)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(run *RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO run_history
		(started_at, finished_at, sheets_total, sheets_ok, sheets_failed)
		VALUES (?,?,?,?,?)`,
		run.StartedAt.Unix(), run.FinishedAt.Unix(),
		run.SheetsTotal, run.SheetsOK, run.SheetsFailed,
	)
	return err
}

func (r *SQLiteRecorder) RecordSheet(rec *SheetRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO sheet_results
		(timestamp, sheet, status, rows_total, rows_priced,
		 mm_decision, bol_decision, macd_decision, rsi_decision, stoc_decision, error)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Sheet, rec.Status, rec.RowsTotal, rec.RowsPriced,
		rec.MMDecision, rec.BolDecision, rec.MACDDecision, rec.RSIDecision, rec.StocDecision,
		rec.Error,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
