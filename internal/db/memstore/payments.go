package memstore

import (
	"context"

	"educonnect-backend/internal/models"
)

type (
	paymentRow  = models.Document
	feedbackRow = models.Document
	auditRow    = models.AuditLog
)

type paymentRepository struct {
	db *DB
}

func (r *paymentRepository) Create(_ context.Context, payment models.Payment) (string, error) {
	return r.db.insertDocument(r.db.payments, payment), nil
}

func (r *paymentRepository) List(_ context.Context) ([]models.Payment, error) {
	return r.db.listDocuments(r.db.payments, ""), nil
}

func (r *paymentRepository) ListByEmail(_ context.Context, email string) ([]models.Payment, error) {
	return r.db.listDocuments(r.db.payments, email), nil
}

type feedbackRepository struct {
	db *DB
}

func (r *feedbackRepository) Create(_ context.Context, feedback models.Feedback) (string, error) {
	return r.db.insertDocument(r.db.feedback, feedback), nil
}

func (r *feedbackRepository) List(_ context.Context) ([]models.Feedback, error) {
	return r.db.listDocuments(r.db.feedback, ""), nil
}

// insertDocument stores a shallow copy of doc without its "_id" and returns
// the new ID. Nested values are shared with the caller and never mutated.
func (d *DB) insertDocument(t *table[models.Document], doc models.Document) string {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	id := d.newID()
	t.insert(id, doc.WithoutID())
	return id
}

// listDocuments returns copies in insertion order, keeping only those whose
// "email" equals email unless email is empty.
func (d *DB) listDocuments(t *table[models.Document], email string) []models.Document {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	out := make([]models.Document, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if email == "" || row.StringField("email") == email {
			out = append(out, row.WithID(id))
		}
	}
	return out
}

type auditRepository struct {
	db *DB
}

func (r *auditRepository) Create(_ context.Context, logEntry models.AuditLog) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	logEntry.ID = r.db.newID()
	r.db.audit.insert(logEntry.ID, logEntry)
	return nil
}

// AuditLogs returns a copy of every recorded audit entry.
func (d *DB) AuditLogs() []models.AuditLog {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.audit.all()
}
