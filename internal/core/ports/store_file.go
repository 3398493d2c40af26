package ports

import "context"

// StoreFile exposes the persistent store as a file for the backup
// coordinator. Callers must hold the appropriate store gate barrier before
// touching the file: a snapshot barrier for CopyTo, the exclusive restore
// barrier for AtomicReplaceFrom.
type StoreFile interface {
	// Path returns the location of the live store file.
	Path() string

	// CopyTo copies the live store to dst and returns the copied size in
	// bytes and the hex SHA-256 digest of the copy.
	CopyTo(ctx context.Context, dst string) (int64, string, error)

	// ValidateSnapshot checks that the file at path is a structurally sound
	// store: correct file signature and all required tables present.
	// Returns an InvalidBackupFormatError when it is not.
	ValidateSnapshot(ctx context.Context, path string) error

	// Checksum returns the hex SHA-256 digest of the file at path.
	Checksum(ctx context.Context, path string) (string, error)

	// AtomicReplaceFrom replaces the live store with the file at src.
	// The replacement is staged next to the live store and swapped in with
	// a rename, so a crash mid-restore leaves either the old store or the
	// new one, never a torn file. All open connections must be reopened
	// afterwards.
	AtomicReplaceFrom(ctx context.Context, src string) error
}
