package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hotelops/hotel-console/internal/core/domain"
	"github.com/hotelops/hotel-console/internal/core/ports"
)

const sessionEventsCollection = "session_events"

// AuditRepository implements ports.SessionEventRepository using MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

var _ ports.SessionEventRepository = (*AuditRepository)(nil)

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(sessionEventsCollection)}
}

// EnsureIndexes indexes events by browsing context and time.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "context_id", Value: 1}, {Key: "occurred_at", Value: -1}},
		Options: options.Index().SetName("context_occurred"),
	})
	return err
}

// Insert appends an event to the session_events audit collection.
func (r *AuditRepository) Insert(ctx context.Context, event domain.SessionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"context_id":  event.ContextID,
		"kind":        string(event.Kind),
		"occurred_at": event.OccurredAt.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.Username != "" {
		doc["username"] = event.Username
	}
	if event.Detail != "" {
		doc["detail"] = event.Detail
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
