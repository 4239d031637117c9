package memstore

import (
	"context"
	"fmt"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

type requestRow = models.TeacherRequest

type teacherRequestRepository struct {
	db *DB
}

func (r *teacherRequestRepository) Create(_ context.Context, req *models.TeacherRequest) (string, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	row := *req
	row.ID = r.db.newID()
	r.db.requests.insert(row.ID, row)
	req.ID = row.ID
	return row.ID, nil
}

func (r *teacherRequestRepository) GetByID(_ context.Context, requestID string) (*models.TeacherRequest, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if req, ok := r.db.requests.get(requestID); ok {
		return &req, nil
	}
	return nil, fmt.Errorf("teacher request with ID '%s': %w", requestID, db.ErrNotFound)
}

func (r *teacherRequestRepository) List(_ context.Context) ([]*models.TeacherRequest, error) {
	return r.filter(""), nil
}

func (r *teacherRequestRepository) ListByEmail(_ context.Context, email string) ([]*models.TeacherRequest, error) {
	return r.filter(email), nil
}

// filter returns every request when email is empty.
func (r *teacherRequestRepository) filter(email string) []*models.TeacherRequest {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	rows := r.db.requests.all()
	out := make([]*models.TeacherRequest, 0, len(rows))
	for i := range rows {
		if email == "" || rows[i].Email == email {
			out = append(out, &rows[i])
		}
	}
	return out
}

func (r *teacherRequestRepository) SetStatus(_ context.Context, requestID, status string) (models.UpdateResult, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	res := models.UpdateResult{Acknowledged: true}
	req, ok := r.db.requests.get(requestID)
	if !ok {
		return res, nil
	}
	res.MatchedCount = 1
	if req.Status != status {
		req.Status = status
		r.db.requests.insert(requestID, req)
		res.ModifiedCount = 1
	}
	return res, nil
}
