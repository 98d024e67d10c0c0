package storage

import (
	"fmt"

	"github.com/samenwerkt-wbd/members-backend/models"
	"gorm.io/gorm"
)

// StorageError marks a failed row-store operation. A storage failure is
// fatal for the request that caused it; callers never retry.
type StorageError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation failed: %s: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// SubmissionStore appends and reads submission rows. Each append is a
// single-row insert, so identifier assignment and the write commit
// atomically under concurrent callers.
type SubmissionStore struct {
	db *gorm.DB
}

// NewSubmissionStore creates a new submission store
func NewSubmissionStore(db *gorm.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// CreateMembership appends one membership row. The database assigns the
// monotonically increasing identifier; the BeforeCreate hook stamps the
// creation time.
func (s *SubmissionStore) CreateMembership(record *models.Membership) error {
	if err := s.db.Create(record).Error; err != nil {
		return &StorageError{Operation: "create membership", Err: err}
	}
	return nil
}

// CreateCafeRegistration appends one café registration row.
func (s *SubmissionStore) CreateCafeRegistration(record *models.CafeRegistration) error {
	if err := s.db.Create(record).Error; err != nil {
		return &StorageError{Operation: "create cafe registration", Err: err}
	}
	return nil
}

// ListMemberships returns all membership rows, newest first. An empty
// table yields an empty slice, not an error.
func (s *SubmissionStore) ListMemberships() ([]models.Membership, error) {
	var rows []models.Membership
	if err := s.db.Order("timestamp DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, &StorageError{Operation: "list memberships", Err: err}
	}
	return rows, nil
}

// ListCafeRegistrations returns all café registration rows, newest first.
func (s *SubmissionStore) ListCafeRegistrations() ([]models.CafeRegistration, error) {
	var rows []models.CafeRegistration
	if err := s.db.Order("timestamp DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, &StorageError{Operation: "list cafe registrations", Err: err}
	}
	return rows, nil
}
