package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"writeassess/services"
)

// credentialDoc is one session's slot; the session id is the document id
type credentialDoc struct {
	SessionID string    `bson:"_id"`
	APIKey    string    `bson:"openai_api_key"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// CredentialStore keeps API keys in a MongoDB collection
type CredentialStore struct {
	collection *mongo.Collection
}

func NewCredentialStore(database *mongo.Database, collection string) *CredentialStore {
	return &CredentialStore{collection: database.Collection(collection)}
}

func (s *CredentialStore) Load(ctx context.Context, sessionID string) (string, error) {
	var doc credentialDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return doc.APIKey, nil
}

func (s *CredentialStore) Save(ctx context.Context, sessionID, apiKey string) error {
	update := bson.M{"$set": bson.M{
		services.CredentialSlot: apiKey,
		"updatedAt":             time.Now().UTC(),
	}}
	_, err := s.collection.UpdateOne(ctx, bson.M{"_id": sessionID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}
	return nil
}

func (s *CredentialStore) Clear(ctx context.Context, sessionID string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
