// Package backup implements the BackupRecord entity describing a
// point-in-time snapshot of the persistent store file. The record holds
// metadata only; the snapshot itself is a byte-for-byte copy of the store.
package backup

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"restopos/internal/core/domain/model/kernel"
	"restopos/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record instance was not
// created through NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// nameRe keeps snapshot names usable as filename stems.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// checksumRe matches a lowercase hex SHA-256 digest.
var checksumRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Record describes one snapshot: its operator-chosen name, when it was
// taken, how many bytes the copy holds, and the SHA-256 checksum of the
// source file. The checksum is recomputed at restore time and must match
// before any data is applied.
type Record struct {
	id        kernel.UUID
	name      string
	createdAt time.Time
	sizeBytes int64
	checksum  string

	isConstructed bool
}

// NewRecord creates a snapshot record. Name is restricted to letters,
// digits, dash, and underscore so it can be embedded in filenames.
func NewRecord(id kernel.UUID, name string, sizeBytes int64, checksum string) (*Record, error) {
	r := &Record{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setSizeBytes(sizeBytes),
		r.setChecksum(checksum),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecord reconstructs a record from persistence, keeping its
// original creation time.
func RestoreRecord(id kernel.UUID, name string, sizeBytes int64, checksum string, createdAt time.Time) (*Record, error) {
	r, err := NewRecord(id, name, sizeBytes, checksum)
	if err != nil {
		return nil, err
	}
	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the Record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ID returns the record identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// Name returns the operator-chosen snapshot name.
func (r *Record) Name() string {
	return r.name
}

// CreatedAt returns when the snapshot was taken.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// SizeBytes returns the snapshot size.
func (r *Record) SizeBytes() int64 {
	return r.sizeBytes
}

// Checksum returns the hex SHA-256 digest of the snapshot file.
func (r *Record) Checksum() string {
	return r.checksum
}

// Filename returns the on-disk snapshot name, embedding the record name and
// creation timestamp for operator traceability, e.g.
// "nightly_20240131_030000.db".
func (r *Record) Filename() string {
	return fmt.Sprintf("%s_%s.db", r.name, r.createdAt.Format("20060102_150405"))
}

// MatchesChecksum reports whether a recomputed digest matches the recorded
// one.
func (r *Record) MatchesChecksum(checksum string) bool {
	return r.checksum == checksum
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setName(name string) error {
	if !nameRe.MatchString(name) {
		return errs.NewValueIsInvalidErrorWithCause("snapshot name",
			fmt.Errorf("%q is not a valid snapshot name", name))
	}
	r.name = name
	return nil
}

func (r *Record) setSizeBytes(size int64) error {
	if size < 0 {
		return errs.NewValueIsInvalidError("snapshot size")
	}
	r.sizeBytes = size
	return nil
}

func (r *Record) setChecksum(checksum string) error {
	if !checksumRe.MatchString(checksum) {
		return errs.NewValueIsInvalidError("snapshot checksum")
	}
	r.checksum = checksum
	return nil
}
