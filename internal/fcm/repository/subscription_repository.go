package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	fcmdomain "twa-backend/internal/fcm/domain"
)

// SubscriptionRepository defines keyed read/write access to subscription records
type SubscriptionRepository interface {
	// Get returns the stored record for a uid, or nil if none exists
	Get(ctx context.Context, uid string) (*fcmdomain.SubscriptionRecord, error)
	// Save overwrites the record for record.UID unconditionally
	Save(ctx context.Context, record *fcmdomain.SubscriptionRecord) error
}

// firestoreSubscriptionRepository implements SubscriptionRepository on Firestore
type firestoreSubscriptionRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreSubscriptionRepository creates a repository backed by the given
// Firestore collection
func NewFirestoreSubscriptionRepository(client *firestore.Client, collection string) SubscriptionRepository {
	return &firestoreSubscriptionRepository{
		client:     client,
		collection: collection,
	}
}

func (r *firestoreSubscriptionRepository) Get(ctx context.Context, uid string) (*fcmdomain.SubscriptionRecord, error) {
	doc, err := r.client.Collection(r.collection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read subscription record for uid %s: %w", uid, err)
	}

	var record fcmdomain.SubscriptionRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, fmt.Errorf("failed to decode subscription record for uid %s: %w", uid, err)
	}
	return &record, nil
}

func (r *firestoreSubscriptionRepository) Save(ctx context.Context, record *fcmdomain.SubscriptionRecord) error {
	// townshipCode is stored as null when the user has no township selected,
	// matching what the web client reads back. lastUpdated is always
	// server-assigned.
	var townshipCode interface{}
	if record.TownshipCode != "" {
		townshipCode = record.TownshipCode
	}

	_, err := r.client.Collection(r.collection).Doc(record.UID).Set(ctx, map[string]interface{}{
		"uid":          record.UID,
		"fcmToken":     record.FCMToken,
		"townshipCode": townshipCode,
		"lastUpdated":  firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to save subscription record for uid %s: %w", record.UID, err)
	}
	return nil
}
