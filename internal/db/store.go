package db

import (
	"errors"
	"strings"
)

// Collection names shared by every store driver.
const (
	usersCollection           = "users"
	classesCollection         = "classes"
	teacherRequestsCollection = "teacherRequests"
	paymentsCollection        = "payments"
	feedbackCollection        = "feedback"
	auditLogsCollection       = "auditLogs"
)

// CollectionNames lists every collection, in the order drivers create them.
var CollectionNames = []string{
	usersCollection,
	classesCollection,
	teacherRequestsCollection,
	paymentsCollection,
	feedbackCollection,
	auditLogsCollection,
}

// ErrNotFound is a common error for when a document is not found in the store.
var ErrNotFound = errors.New("document not found")

// Store bundles one repository per collection behind a single driver.
type Store struct {
	Users           UserRepository
	Classes         ClassRepository
	TeacherRequests TeacherRequestRepository
	Payments        PaymentRepository
	Feedback        FeedbackRepository
	Audit           AuditRepository

	closeFn func() error
}

// NewStore assembles a Store. closeFn releases the driver connection and may be nil.
func NewStore(users UserRepository, classes ClassRepository, requests TeacherRequestRepository,
	payments PaymentRepository, feedback FeedbackRepository, audit AuditRepository, closeFn func() error) *Store {
	return &Store{
		Users:           users,
		Classes:         classes,
		TeacherRequests: requests,
		Payments:        payments,
		Feedback:        feedback,
		Audit:           audit,
		closeFn:         closeFn,
	}
}

// Close releases the underlying driver connection.
func (s *Store) Close() error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// MatchesSearch reports whether name or email contains query, ignoring case.
// Drivers without a substring operator filter with it client-side.
func MatchesSearch(name, email, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(name), q) || strings.Contains(strings.ToLower(email), q)
}
