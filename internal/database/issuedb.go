package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// DBFileName is the file name of the register inside the database directory.
const DBFileName = "locatereport.db"

// Layouts used to store dates and timestamps as sortable text.
const (
	issuedOnLayout  = "2006-01-02"
	createdAtLayout = "2006-01-02 15:04:05.000000"
)

// ErrNotFound is returned when an issue ID does not exist.
var ErrNotFound = errors.New("issue not found")

// IssueDB is the register of issued reports.
type IssueDB struct {
	db     *sql.DB
	dbPath string

	// now is the clock used for CreatedAt.
	now func() time.Time
}

// Options configures IssueDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging so a running batch does not
	// block the history command.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the register in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*IssueDB, error) {
	dbPath := filepath.Join(dbDir, DBFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file; mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	idb := &IssueDB{
		db:     db,
		dbPath: dbPath,
		now:    time.Now,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := idb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return idb, nil
}

// Path returns the database file path.
func (idb *IssueDB) Path() string {
	return idb.dbPath
}

// Close closes the database connection.
func (idb *IssueDB) Close() error {
	return idb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (idb *IssueDB) createTables() error {
	schema := `
	-- One row per rendered document
	CREATE TABLE IF NOT EXISTS issues (
		id TEXT PRIMARY KEY,
		job_number TEXT NOT NULL,
		revision INTEGER NOT NULL DEFAULT 0,
		client_company TEXT NOT NULL,
		issued_on TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		format TEXT NOT NULL,
		output_path TEXT,
		warnings INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_issues_job ON issues(job_number);
	CREATE INDEX IF NOT EXISTS idx_issues_created ON issues(created_at);
	`

	_, err := idb.db.ExecContext(context.Background(), schema)
	return err
}

// Issue is one rendered document in the register.
type Issue struct {
	ID            string    `json:"id"`
	JobNumber     string    `json:"job_number"`
	Revision      int       `json:"revision"`
	ClientCompany string    `json:"client_company"`
	IssuedOn      time.Time `json:"issued_on"`
	Fingerprint   string    `json:"fingerprint"`
	Format        string    `json:"format"`
	OutputPath    string    `json:"output_path,omitempty"`
	Warnings      int       `json:"warnings"`
	CreatedAt     time.Time `json:"created_at"`
}

// JobSummary aggregates the issues of one job.
type JobSummary struct {
	JobNumber     string    `json:"job_number"`
	ClientCompany string    `json:"client_company"`
	Issues        int       `json:"issues"`
	LatestRev     int       `json:"latest_revision"`
	LastIssuedOn  time.Time `json:"last_issued_on"`
}

// RecordIssue stores an issue. A missing ID is generated and a zero
// CreatedAt is set to the current time; both are written back to issue.
func (idb *IssueDB) RecordIssue(ctx context.Context, issue *Issue) error {
	if issue.ID == "" {
		issue.ID = uuid.NewString()
	}
	if issue.CreatedAt.IsZero() {
		issue.CreatedAt = idb.now()
	}

	query := `
	INSERT INTO issues (id, job_number, revision, client_company, issued_on, fingerprint, format, output_path, warnings, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := idb.db.ExecContext(ctx, query,
		issue.ID,
		issue.JobNumber,
		issue.Revision,
		issue.ClientCompany,
		issue.IssuedOn.Format(issuedOnLayout),
		issue.Fingerprint,
		issue.Format,
		issue.OutputPath,
		issue.Warnings,
		issue.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to record issue: %w", err)
	}
	return nil
}

const issueColumns = `id, job_number, revision, client_company, issued_on, fingerprint, format, output_path, warnings, created_at`

// ListIssues returns every issue of a job, oldest first.
func (idb *IssueDB) ListIssues(ctx context.Context, jobNumber string) ([]Issue, error) {
	query := `SELECT ` + issueColumns + `
	FROM issues
	WHERE job_number = ?
	ORDER BY created_at ASC, rowid ASC
	`

	rows, err := idb.db.QueryContext(ctx, query, jobNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	var issues []Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		issues = append(issues, *issue)
	}

	return issues, rows.Err()
}

// LatestIssue returns the most recent issue of a job, or nil when the job
// has never been issued.
func (idb *IssueDB) LatestIssue(ctx context.Context, jobNumber string) (*Issue, error) {
	query := `SELECT ` + issueColumns + `
	FROM issues
	WHERE job_number = ?
	ORDER BY created_at DESC, rowid DESC
	LIMIT 1
	`

	issue, err := scanIssue(idb.db.QueryRowContext(ctx, query, jobNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return issue, err
}

// GetIssue returns an issue by ID, or ErrNotFound.
func (idb *IssueDB) GetIssue(ctx context.Context, id string) (*Issue, error) {
	query := `SELECT ` + issueColumns + ` FROM issues WHERE id = ?`

	issue, err := scanIssue(idb.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return issue, err
}

// ListJobs summarises every job in the register, most recently issued first.
func (idb *IssueDB) ListJobs(ctx context.Context) ([]JobSummary, error) {
	query := `
	SELECT job_number, MAX(client_company), COUNT(*), MAX(revision), MAX(issued_on), MAX(created_at) AS last_created
	FROM issues
	GROUP BY job_number
	ORDER BY last_created DESC
	`

	rows, err := idb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []JobSummary
	for rows.Next() {
		var job JobSummary
		var issuedOn, lastCreated string
		if err := rows.Scan(&job.JobNumber, &job.ClientCompany, &job.Issues, &job.LatestRev, &issuedOn, &lastCreated); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		job.LastIssuedOn = parseTimestamp(issuedOn)
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanIssue(row rowScanner) (*Issue, error) {
	var issue Issue
	var issuedOn, createdAt string
	var outputPath sql.NullString

	err := row.Scan(
		&issue.ID,
		&issue.JobNumber,
		&issue.Revision,
		&issue.ClientCompany,
		&issuedOn,
		&issue.Fingerprint,
		&issue.Format,
		&outputPath,
		&issue.Warnings,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan issue: %w", err)
	}

	issue.OutputPath = outputPath.String
	issue.IssuedOn = parseTimestamp(issuedOn)
	issue.CreatedAt = parseTimestamp(createdAt)

	return &issue, nil
}

// timestampFormats contains the layouts stored in or returned by SQLite.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	createdAtLayout,
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	issuedOnLayout,
}

// parseTimestamp parses a stored date or timestamp.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// ContentChanged reports whether the document differs from a previous issue.
func (i Issue) ContentChanged(prev Issue) bool {
	return i.Fingerprint != prev.Fingerprint
}
