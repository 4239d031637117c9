package memstore

import (
	"context"
	"encoding/json"
	"fmt"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

type classRow = models.Class

type classRepository struct {
	db *DB
}

func (r *classRepository) Create(_ context.Context, class *models.Class) (string, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	row := *class
	row.ID = r.db.newID()
	r.db.classes.insert(row.ID, row)
	class.ID = row.ID
	return row.ID, nil
}

func (r *classRepository) GetByID(_ context.Context, classID string) (*models.Class, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if class, ok := r.db.classes.get(classID); ok {
		return &class, nil
	}
	return nil, fmt.Errorf("class with ID '%s': %w", classID, db.ErrNotFound)
}

func (r *classRepository) List(_ context.Context) ([]*models.Class, error) {
	return r.filter(func(*models.Class) bool { return true }), nil
}

func (r *classRepository) ListByPublisher(_ context.Context, email string) ([]*models.Class, error) {
	return r.filter(func(c *models.Class) bool { return c.Publisher.Email == email }), nil
}

func (r *classRepository) filter(keep func(*models.Class) bool) []*models.Class {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	rows := r.db.classes.all()
	out := make([]*models.Class, 0, len(rows))
	for i := range rows {
		if keep(&rows[i]) {
			out = append(out, &rows[i])
		}
	}
	return out
}

// Patch round-trips the stored class through its JSON form, the same shape the
// other drivers store, and writes back only when a field actually changes.
func (r *classRepository) Patch(_ context.Context, classID string, patch models.ClassPatch) (models.UpdateResult, error) {
	return r.setFields(classID, patch)
}

func (r *classRepository) SetStatus(_ context.Context, classID, status string) (models.UpdateResult, error) {
	return r.setFields(classID, map[string]interface{}{"status": status})
}

func (r *classRepository) SetAssignments(_ context.Context, classID string, assignments interface{}) (models.UpdateResult, error) {
	return r.setFields(classID, map[string]interface{}{"assignments": assignments})
}

func (r *classRepository) setFields(classID string, fields map[string]interface{}) (models.UpdateResult, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	res := models.UpdateResult{Acknowledged: true}
	class, ok := r.db.classes.get(classID)
	if !ok {
		return res, nil
	}
	res.MatchedCount = 1

	raw, err := json.Marshal(class)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to encode class '%s': %w", classID, err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to encode class '%s': %w", classID, err)
	}

	changed := false
	for key, value := range fields {
		if existing, ok := doc[key]; ok && db.SameValue(existing, value) {
			continue
		}
		doc[key] = value
		changed = true
	}
	if !changed {
		return res, nil
	}

	raw, err = json.Marshal(doc)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to apply patch to class '%s': %w", classID, err)
	}
	var updated models.Class
	if err := json.Unmarshal(raw, &updated); err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to apply patch to class '%s': %w", classID, err)
	}
	updated.ID = classID
	r.db.classes.insert(classID, updated)
	res.ModifiedCount = 1
	return res, nil
}

func (r *classRepository) IncrementEnrollment(_ context.Context, classID string, delta int64) (models.UpdateResult, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	res := models.UpdateResult{Acknowledged: true}
	class, ok := r.db.classes.get(classID)
	if !ok {
		return res, nil
	}
	class.Enroll += delta
	r.db.classes.insert(classID, class)
	res.MatchedCount, res.ModifiedCount = 1, 1
	return res, nil
}

func (r *classRepository) Delete(_ context.Context, classID string) (models.DeleteResult, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	res := models.DeleteResult{Acknowledged: true}
	if r.db.classes.remove(classID) {
		res.DeletedCount = 1
	}
	return res, nil
}
