package db

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"educonnect-backend/internal/config"
	"educonnect-backend/internal/models"
)

// OpenFirestore initializes the Firebase Admin SDK and returns its Firestore client.
// Credentials come from a service-account file, a Base64 encoded service-account
// JSON, or Application Default Credentials, in that order.
func OpenFirestore(ctx context.Context, appConfig *config.Config, logger *zap.Logger) (*firestore.Client, error) {
	if appConfig == nil {
		return nil, errors.New("OpenFirestore: appConfig cannot be nil")
	}

	var opts []option.ClientOption
	switch {
	case appConfig.GoogleApplicationCredentials != "":
		logger.Info("Initializing Firebase with credentials file", zap.String("path", appConfig.GoogleApplicationCredentials))
		if _, err := os.Stat(appConfig.GoogleApplicationCredentials); os.IsNotExist(err) {
			// ADC may still be available in the environment.
			logger.Warn("Credentials file does not exist", zap.String("path", appConfig.GoogleApplicationCredentials))
		}
		opts = append(opts, option.WithCredentialsFile(appConfig.GoogleApplicationCredentials))
	case appConfig.FirebaseServiceAccountJSONBase64 != "":
		logger.Info("Initializing Firebase with Base64 encoded service account JSON")
		decodedJSON, err := base64.StdEncoding.DecodeString(appConfig.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decodedJSON))
	default:
		logger.Info("Initializing Firebase using Application Default Credentials")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: appConfig.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}
	logger.Info("Firestore client initialized", zap.String("projectID", appConfig.FirebaseProjectID))
	return client, nil
}

// NewFirestoreStore wires every Firestore repository onto one client.
func NewFirestoreStore(client *firestore.Client) *Store {
	return NewStore(
		NewFirestoreUserRepository(client),
		NewFirestoreClassRepository(client),
		NewFirestoreTeacherRequestRepository(client),
		NewFirestorePaymentRepository(client),
		NewFirestoreFeedbackRepository(client),
		NewFirestoreAuditRepository(client),
		client.Close,
	)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// docRef returns nil for IDs Firestore cannot address.
func docRef(client *firestore.Client, collection, id string) *firestore.DocumentRef {
	if id == "" {
		return nil
	}
	return client.Collection(collection).Doc(id)
}

// getDoc loads one document into dst, mapping a missing document to ErrNotFound.
func getDoc(ctx context.Context, client *firestore.Client, collection, id string, dst interface{}) error {
	ref := docRef(client, collection, id)
	if ref == nil {
		return fmt.Errorf("%s '%s': %w", collection, id, ErrNotFound)
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s '%s': %w", collection, id, ErrNotFound)
		}
		return fmt.Errorf("failed to get %s '%s': %w", collection, id, err)
	}
	if err := snap.DataTo(dst); err != nil {
		return fmt.Errorf("failed to decode %s '%s': %w", collection, id, err)
	}
	return nil
}

// collect drains a document iterator, decoding each document and stamping its ID.
func collect[T any](iter *firestore.DocumentIterator, setID func(*T, string)) ([]*T, error) {
	defer iter.Stop()

	out := make([]*T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		item := new(T)
		if err := doc.DataTo(item); err != nil {
			return nil, fmt.Errorf("failed to decode document '%s': %w", doc.Ref.ID, err)
		}
		setID(item, doc.Ref.ID)
		out = append(out, item)
	}
	return out, nil
}

// collectDocuments drains a document iterator into free-form documents,
// each carrying its document ID under models.DocumentIDKey.
func collectDocuments(iter *firestore.DocumentIterator) ([]models.Document, error) {
	defer iter.Stop()

	out := make([]models.Document, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, models.Document(doc.Data()).WithID(doc.Ref.ID))
	}
	return out, nil
}

// setFields writes fields onto an existing document inside a transaction and
// reports matched/modified counts. Fields already holding the same value do not
// count as a modification and are not rewritten.
func setFields(ctx context.Context, client *firestore.Client, collection, id string, fields map[string]interface{}) (models.UpdateResult, error) {
	result := models.UpdateResult{Acknowledged: true}
	ref := docRef(client, collection, id)
	if ref == nil {
		return result, nil
	}

	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result.MatchedCount, result.ModifiedCount = 0, 0

		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}
		result.MatchedCount = 1

		current := snap.Data()
		var updates []firestore.Update
		for path, value := range fields {
			if existing, ok := current[path]; ok && SameValue(existing, value) {
				continue
			}
			updates = append(updates, firestore.Update{Path: path, Value: value})
		}
		if len(updates) == 0 {
			return nil
		}
		result.ModifiedCount = 1
		return tx.Update(ref, updates)
	})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to update %s '%s': %w", collection, id, err)
	}
	return result, nil
}

// deleteDoc removes a document only if it exists, so the deleted count is exact.
func deleteDoc(ctx context.Context, client *firestore.Client, collection, id string) (models.DeleteResult, error) {
	result := models.DeleteResult{Acknowledged: true}
	ref := docRef(client, collection, id)
	if ref == nil {
		return result, nil
	}
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return result, nil
		}
		return models.DeleteResult{}, fmt.Errorf("failed to delete %s '%s': %w", collection, id, err)
	}
	result.DeletedCount = 1
	return result, nil
}
