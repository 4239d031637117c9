// Package memstore is an in-process document store used for local development
// (STORE_DRIVER=memory) and as the storage double in tests.
package memstore

import (
	"sync"

	"github.com/google/uuid"

	"educonnect-backend/internal/db"
)

// DB holds every collection behind one lock, so each repository call is atomic.
type DB struct {
	mutex sync.RWMutex

	users    *table[userRow]
	classes  *table[classRow]
	requests *table[requestRow]
	payments *table[paymentRow]
	feedback *table[feedbackRow]
	audit    *table[auditRow]

	newID func() string
}

// Open returns an empty database.
func Open() *DB {
	return &DB{
		users:    newTable[userRow](),
		classes:  newTable[classRow](),
		requests: newTable[requestRow](),
		payments: newTable[paymentRow](),
		feedback: newTable[feedbackRow](),
		audit:    newTable[auditRow](),
		newID:    uuid.NewString,
	}
}

// NewStore wires every in-memory repository onto database.
func NewStore(database *DB) *db.Store {
	return db.NewStore(
		&userRepository{db: database},
		&classRepository{db: database},
		&teacherRequestRepository{db: database},
		&paymentRepository{db: database},
		&feedbackRepository{db: database},
		&auditRepository{db: database},
		nil,
	)
}

// table keeps rows in insertion order so listings are stable.
type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, row T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) get(id string) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}
