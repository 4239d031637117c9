// Package mongostore implements the document repositories on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"educonnect-backend/internal/config"
	"educonnect-backend/internal/db"
	"educonnect-backend/internal/models"
)

const connectTimeout = 10 * time.Second

// URI builds the connection string from config. MONGO_URI wins; otherwise the
// credentials and host are assembled into an Atlas style SRV URI.
func URI(appConfig *config.Config) (string, error) {
	if appConfig.MongoURI != "" {
		return appConfig.MongoURI, nil
	}
	if appConfig.MongoHost == "" {
		return "", errors.New("MONGO_URI or MONGO_HOST must be set for the mongo store")
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		Host:     appConfig.MongoHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	if appConfig.MongoUser != "" {
		u.User = url.UserPassword(appConfig.MongoUser, appConfig.MongoPassword)
	}
	return u.String(), nil
}

// Open connects, pings and prepares indexes, returning a Store whose Close
// disconnects the client.
func Open(ctx context.Context, appConfig *config.Config, logger *zap.Logger) (*db.Store, error) {
	uri, err := URI(appConfig)
	if err != nil {
		return nil, err
	}

	clientOpts := options.Client().
		ApplyURI(uri).
		SetRegistry(newRegistry()).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	database := client.Database(appConfig.MongoDatabase)
	if err := ensureIndexes(connectCtx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	logger.Info("MongoDB client initialized", zap.String("database", appConfig.MongoDatabase))

	return db.NewStore(
		&userRepository{coll: database.Collection("users")},
		&classRepository{coll: database.Collection("classes")},
		&teacherRequestRepository{coll: database.Collection("teacherRequests")},
		&paymentRepository{coll: database.Collection("payments")},
		&feedbackRepository{coll: database.Collection("feedback")},
		&auditRepository{coll: database.Collection("auditLogs")},
		func() error { return client.Disconnect(context.Background()) },
	), nil
}

// ensureIndexes enforces one account per email and speeds up the per-user lookups.
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{"users", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{"classes", mongo.IndexModel{Keys: bson.D{{Key: "publisher.email", Value: 1}}}},
		{"teacherRequests", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}},
		{"payments", mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}},
	}
	for _, idx := range indexes {
		if _, err := database.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.collection, err)
		}
	}
	return nil
}

// objectID parses a hex document ID. Malformed IDs address nothing.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}

// containsFold matches field values containing query literally, ignoring case.
func containsFold(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}

func findOne[D any](ctx context.Context, coll *mongo.Collection, filter interface{}, what string) (*D, error) {
	doc := new(D)
	if err := coll.FindOne(ctx, filter).Decode(doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", what, db.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	return doc, nil
}

func findAll[D any, T any](ctx context.Context, coll *mongo.Collection, filter interface{}, toModel func(*D) *T) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(docs))
	for i := range docs {
		out = append(out, toModel(&docs[i]))
	}
	return out, nil
}

// findDocuments reads free-form documents in stored order.
func findDocuments(ctx context.Context, coll *mongo.Collection, filter interface{}) ([]models.Document, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, err
	}
	out := make([]models.Document, 0, len(raws))
	for _, raw := range raws {
		out = append(out, freeForm(raw))
	}
	return out, nil
}

func insert(ctx context.Context, coll *mongo.Collection, doc interface{}) (string, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func update(ctx context.Context, coll *mongo.Collection, id string, change bson.M) (models.UpdateResult, error) {
	oid, ok := objectID(id)
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	res, err := coll.UpdateByID(ctx, oid, change)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to update %s '%s': %w", coll.Name(), id, err)
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func remove(ctx context.Context, coll *mongo.Collection, id string) (models.DeleteResult, error) {
	oid, ok := objectID(id)
	if !ok {
		return models.DeleteResult{Acknowledged: true}, nil
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete %s '%s': %w", coll.Name(), id, err)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
