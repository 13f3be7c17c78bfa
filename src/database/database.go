package database

import (
	"database/sql"
	stdlog "log"

	"github.com/JayRichh/steamshare/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

// InitDB opens the sqlite database and ensures the sessions schema exists.
// Session rows are written by the login flow (an external collaborator of
// this service); the inventory API only ever reads them.
func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	if logger.L != nil {
		logger.L.Info("Ensuring database schema", "databasePath", databasePath)
	} else {
		stdlog.Println("Ensuring database schema for:", databasePath)
	}

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		steam_id TEXT NOT NULL,
		token TEXT NOT NULL,
		refresh_token TEXT NOT NULL,
		user_agent TEXT,
		client_ip TEXT,
		is_blocked BOOLEAN DEFAULT FALSE,
		expires_at TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token);
	`

	if _, err := db.Exec(createTableStatement); err != nil {
		stdlog.Fatalf("failed to create sessions table: %v", err)
	}
}
