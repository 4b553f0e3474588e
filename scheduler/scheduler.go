package scheduler

// Package scheduler provides scheduled job management for the file API backend.
// It handles:
// - Flushing queued uploads to disk and the database
// - Expiring files past their retention window
// - Trimming user and item tables back to their caps
//
// The main scheduler is implemented in jobs.go
