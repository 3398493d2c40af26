package sqlite

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"restopos/internal/pkg/errs"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// storeSignature is the 16-byte header every store file starts with.
var storeSignature = []byte("SQLite format 3\x00")

// StoreFile exposes the live store as a file for the backup coordinator.
// Callers hold the appropriate gate barrier; this type only moves bytes.
type StoreFile struct {
	db *DB
}

// NewStoreFile creates a file-level accessor for the given store.
func NewStoreFile(db *DB) *StoreFile {
	return &StoreFile{db: db}
}

// Path returns the location of the live store file.
func (s *StoreFile) Path() string {
	return s.db.Path()
}

// CopyTo copies the live store to dst, returning the copied size and the hex
// SHA-256 digest of the copy. The snapshot barrier must be held so no write
// lands mid-copy.
func (s *StoreFile) CopyTo(_ context.Context, dst string) (int64, string, error) {
	src, err := os.Open(s.db.Path())
	if err != nil {
		return 0, "", errs.NewBackupIOError("open store", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, "", errs.NewBackupIOError("create snapshot", err)
	}

	hash := sha256.New()
	size, err := io.Copy(io.MultiWriter(out, hash), src)
	if err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return 0, "", errs.NewBackupIOError("copy store", err)
	}

	if err = out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return 0, "", errs.NewBackupIOError("sync snapshot", err)
	}
	if err = out.Close(); err != nil {
		_ = os.Remove(dst)
		return 0, "", errs.NewBackupIOError("close snapshot", err)
	}

	return size, hex.EncodeToString(hash.Sum(nil)), nil
}

// ValidateSnapshot checks that the file at path is a structurally sound
// store before it may replace the live one. The file signature is checked
// first; then the snapshot is opened read-only and every required table must
// be present.
func (s *StoreFile) ValidateSnapshot(ctx context.Context, path string) error {
	if err := checkSignature(path); err != nil {
		return err
	}
	return checkTables(ctx, path)
}

func checkSignature(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errs.NewBackupIOError("open snapshot", err)
	}
	defer f.Close()

	header := make([]byte, len(storeSignature))
	if _, err = io.ReadFull(f, header); err != nil {
		return errs.NewInvalidBackupFormatError("file too short to be a store")
	}
	for i := range storeSignature {
		if header[i] != storeSignature[i] {
			return errs.NewInvalidBackupFormatError("file signature mismatch")
		}
	}
	return nil
}

func checkTables(ctx context.Context, path string) error {
	gdb, err := gorm.Open(sqlite.Open(path+"?mode=ro"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return errs.NewInvalidBackupFormatError("snapshot cannot be opened")
	}
	defer func() {
		if sqlDB, dbErr := gdb.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	}()

	var names []string
	err = gdb.WithContext(ctx).
		Raw("SELECT name FROM sqlite_master WHERE type = 'table'").
		Scan(&names).Error
	if err != nil {
		return errs.NewInvalidBackupFormatError("snapshot schema cannot be read")
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}
	for _, required := range requiredTables {
		if !present[required] {
			return errs.NewInvalidBackupFormatError(fmt.Sprintf("missing table %q", required))
		}
	}
	return nil
}

// Checksum returns the hex SHA-256 digest of the file at path.
func (s *StoreFile) Checksum(_ context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errs.NewBackupIOError("open snapshot", err)
	}
	defer f.Close()

	hash := sha256.New()
	if _, err = io.Copy(hash, f); err != nil {
		return "", errs.NewBackupIOError("read snapshot", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// AtomicReplaceFrom replaces the live store with the file at src. The
// replacement is staged in the store's directory and swapped in with a
// rename, so a crash mid-restore leaves either the old store or the new one,
// never a torn file. The exclusive restore barrier must be held.
func (s *StoreFile) AtomicReplaceFrom(_ context.Context, src string) error {
	live := s.db.Path()
	staged := filepath.Join(filepath.Dir(live), filepath.Base(live)+".restore")

	in, err := os.Open(src)
	if err != nil {
		return errs.NewRestoreIOError("open snapshot", err)
	}
	defer in.Close()

	out, err := os.Create(staged)
	if err != nil {
		return errs.NewRestoreIOError("stage snapshot", err)
	}

	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(staged)
		return errs.NewRestoreIOError("copy snapshot", err)
	}
	if err = out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(staged)
		return errs.NewRestoreIOError("sync staged snapshot", err)
	}
	if err = out.Close(); err != nil {
		_ = os.Remove(staged)
		return errs.NewRestoreIOError("close staged snapshot", err)
	}

	if err = os.Rename(staged, live); err != nil {
		_ = os.Remove(staged)
		return errs.NewRestoreIOError("swap store", err)
	}
	return nil
}
