package memstore

import (
	"context"
	"fmt"

	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

type userRow = models.User

type userRepository struct {
	db *DB
}

func (r *userRepository) GetByID(_ context.Context, userID string) (*models.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if usr, ok := r.db.users.get(userID); ok {
		return &usr, nil
	}
	return nil, fmt.Errorf("user with ID '%s': %w", userID, db.ErrNotFound)
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if usr, ok := r.findByEmail(email); ok {
		return &usr, nil
	}
	return nil, fmt.Errorf("user with email '%s': %w", email, db.ErrNotFound)
}

func (r *userRepository) findByEmail(email string) (models.User, bool) {
	for _, usr := range r.db.users.all() {
		if usr.Email == email {
			return usr, true
		}
	}
	return models.User{}, false
}

func (r *userRepository) GetOrCreateByEmail(_ context.Context, user *models.User) (*models.User, bool, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if usr, ok := r.findByEmail(user.Email); ok {
		return &usr, false, nil
	}
	usr := *user
	usr.ID = r.db.newID()
	r.db.users.insert(usr.ID, usr)
	return &usr, true, nil
}

func (r *userRepository) List(_ context.Context) ([]*models.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	rows := r.db.users.all()
	out := make([]*models.User, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out, nil
}

func (r *userRepository) Search(ctx context.Context, query string) ([]*models.User, error) {
	users, _ := r.List(ctx)
	out := make([]*models.User, 0, len(users))
	for _, usr := range users {
		if db.MatchesSearch(usr.Name, usr.Email, query) {
			out = append(out, usr)
		}
	}
	return out, nil
}

func (r *userRepository) SetRole(_ context.Context, userID, role string) (models.UpdateResult, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	res := models.UpdateResult{Acknowledged: true}
	usr, ok := r.db.users.get(userID)
	if !ok {
		return res, nil
	}
	res.MatchedCount = 1
	if usr.Role != role {
		usr.Role = role
		r.db.users.insert(userID, usr)
		res.ModifiedCount = 1
	}
	return res, nil
}

func (r *userRepository) Delete(_ context.Context, userID string) (models.DeleteResult, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	res := models.DeleteResult{Acknowledged: true}
	if r.db.users.remove(userID) {
		res.DeletedCount = 1
	}
	return res, nil
}
