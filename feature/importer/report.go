package importer

import (
	"time"

	"cookie-importer/core/cookiefile"
	"cookie-importer/core/reconcile"
)

// Report describes one import run.
type Report struct {
	// Profile is the profile directory.
	Profile string `json:"profile"`
	// Database is the cookies.sqlite path.
	Database string `json:"database"`
	// Source names the export: a path, an s3:// URL or an upload name.
	Source string `json:"source"`
	// Format is the detected export format.
	Format cookiefile.Format `json:"format,omitempty"`
	// DryRun is set when nothing was written.
	DryRun bool `json:"dry_run"`
	// RemovedSidecars lists the journal files deleted before writing.
	RemovedSidecars []string `json:"removed_sidecars,omitempty"`
	// Backup is the local backup path.
	Backup string `json:"backup,omitempty"`
	// BackupObject is the uploaded backup, as an s3:// URL.
	BackupObject string `json:"backup_object,omitempty"`
	// Summary holds the write counts of a real run.
	Summary reconcile.Summary `json:"summary"`
	// Plan holds the counts of a dry run.
	Plan *reconcile.PlanSummary `json:"plan,omitempty"`
	// Maintained is set when VACUUM and REINDEX both succeeded.
	Maintained bool `json:"maintained"`
	// Warnings collects non-fatal problems.
	Warnings []string `json:"warnings,omitempty"`
	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

func (r *Report) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}
