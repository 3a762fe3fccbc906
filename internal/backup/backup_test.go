package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/wakelog/internal/constants"
)

// newTestDB creates a populated SQLite database in a temp dir and returns
// its path.
func newTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "wakelog.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE days (date TEXT PRIMARY KEY, wake_time TEXT)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO days (date, wake_time) VALUES ('2024-03-15', '06:00')"); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
	return dbPath
}

func countDays(t *testing.T, dbPath string) int {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM days").Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func TestCreateBackup(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() unexpected error: %v", err)
	}

	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		t.Errorf("backup filename %q does not match the naming scheme", name)
	}

	if got := countDays(t, backupPath); got != 1 {
		t.Errorf("backup row count = %d, want 1", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup() expected error for missing database")
	}
}

func TestListBackups(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() unexpected error: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("len(backups) = %d before any backup, want 0", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() unexpected error: %v", err)
	}
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("second CreateBackup() unexpected error: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() unexpected error: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("len(backups) = %d, want 2", len(backups))
	}
	for _, b := range backups {
		if b.Size == 0 {
			t.Errorf("backup %s has zero size", b.Path)
		}
		if b.Timestamp.IsZero() {
			t.Errorf("backup %s has zero timestamp", b.Path)
		}
	}
	if backups[0].Timestamp.Before(backups[1].Timestamp) {
		t.Error("backups not sorted newest first")
	}
}

func TestParseBackupTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantOK   bool
	}{
		{name: "minute precision", filename: "wakelog-20240315-0630.db", wantOK: true},
		{name: "second precision", filename: "wakelog-20240315-063045.db", wantOK: true},
		{name: "collision counter", filename: "wakelog-20240315-063045-2.db", wantOK: true},
		{name: "garbage", filename: "wakelog-notadate.db", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseBackupTimestamp(tt.filename)
			if ok != tt.wantOK {
				t.Errorf("parseBackupTimestamp(%q) ok = %v, want %v", tt.filename, ok, tt.wantOK)
			}
		})
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := newTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() unexpected error: %v", err)
	}

	// Change the live database after the backup
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("DELETE FROM days"); err != nil {
		t.Fatalf("failed to delete rows: %v", err)
	}
	db.Close()

	if got := countDays(t, dbPath); got != 0 {
		t.Fatalf("pre-restore row count = %d, want 0", got)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() unexpected error: %v", err)
	}

	if got := countDays(t, dbPath); got != 1 {
		t.Errorf("post-restore row count = %d, want 1", got)
	}

	// The restore path takes a safety backup of the pre-restore state
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() unexpected error: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("len(backups) = %d after restore, want at least 2", len(backups))
	}
}

func TestRestoreBackupMissingFile(t *testing.T) {
	mgr := NewManager(newTestDB(t))
	if err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("RestoreBackup() expected error for missing backup file")
	}
}
