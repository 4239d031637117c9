package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"educonnect-backend/internal/models"
)

// firestoreUserRepository implements the UserRepository interface using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		zap.L().Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

func setUserID(u *models.User, id string) { u.ID = id }

// GetByID retrieves a user document by its document ID.
func (r *firestoreUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := getDoc(ctx, r.client, usersCollection, userID, &user); err != nil {
		return nil, err
	}
	user.ID = userID
	return &user, nil
}

// GetByEmail retrieves the user registered with email.
func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty for GetByEmail operation")
	}
	users, err := collect(r.client.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx), setUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email '%s': %w", email, err)
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user with email '%s': %w", email, ErrNotFound)
	}
	return users[0], nil
}

// GetOrCreateByEmail looks the email up and inserts the user inside a single
// transaction, so two concurrent registrations cannot both insert.
func (r *firestoreUserRepository) GetOrCreateByEmail(ctx context.Context, user *models.User) (*models.User, bool, error) {
	if user == nil || user.Email == "" {
		return nil, false, errors.New("user email cannot be empty for GetOrCreateByEmail operation")
	}
	coll := r.client.Collection(usersCollection)

	var (
		result  *models.User
		created bool
	)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result, created = nil, false

		existing, err := collect(tx.Documents(coll.Where("email", "==", user.Email).Limit(1)), setUserID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			result = existing[0]
			return nil
		}

		ref := coll.NewDoc()
		if err := tx.Create(ref, user); err != nil {
			return err
		}
		fresh := *user
		fresh.ID = ref.ID
		result, created = &fresh, true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get or create user '%s': %w", user.Email, err)
	}
	return result, created, nil
}

// List returns every user document.
func (r *firestoreUserRepository) List(ctx context.Context) ([]*models.User, error) {
	users, err := collect(r.client.Collection(usersCollection).Documents(ctx), setUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Search filters users client-side: Firestore has no substring operator.
func (r *firestoreUserRepository) Search(ctx context.Context, query string) ([]*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]*models.User, 0, len(users))
	for _, u := range users {
		if MatchesSearch(u.Name, u.Email, query) {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

// SetRole overwrites the role field of one user.
func (r *firestoreUserRepository) SetRole(ctx context.Context, userID, role string) (models.UpdateResult, error) {
	return setFields(ctx, r.client, usersCollection, userID, map[string]interface{}{"role": role})
}

// Delete removes one user document.
func (r *firestoreUserRepository) Delete(ctx context.Context, userID string) (models.DeleteResult, error) {
	return deleteDoc(ctx, r.client, usersCollection, userID)
}
