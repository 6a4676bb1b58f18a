package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxListLimit caps every list result regardless of the requested limit.
const MaxListLimit = 100

// EntityStore is the handler-facing contract for one entity collection.
type EntityStore[T any] interface {
	InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error)
	FindMany(ctx context.Context, limit int64) ([]T, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	ReplaceByID(ctx context.Context, id primitive.ObjectID, doc *T) (bool, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// FileStore is the handler-facing contract for one file collection.
type FileStore interface {
	Insert(ctx context.Context, parentID string, rec *FileRecord) (primitive.ObjectID, error)
	FindLatestByParent(ctx context.Context, parentID string) (*FileRecord, error)
}

// Store bundles every collection handle the API uses. It is built once at
// startup from the process-wide client and passed into route setup.
type Store struct {
	Events    *Collection[Event]
	Attendees *Collection[Attendee]
	Venues    *Collection[Venue]
	Bookings  *Collection[Booking]

	EventPosters *FileCollection
	PromoVideos  *FileCollection
	VenuePhotos  *FileCollection
}

func NewStore(client *mongo.Client) *Store {
	db := client.Database(DbName)
	return &Store{
		Events:       NewCollection[Event](db, EventsColName),
		Attendees:    NewCollection[Attendee](db, AttendeesColName),
		Venues:       NewCollection[Venue](db, VenuesColName),
		Bookings:     NewCollection[Booking](db, BookingsColName),
		EventPosters: NewFileCollection(db, EventPostersColName, "event_id"),
		PromoVideos:  NewFileCollection(db, PromoVideosColName, "event_id"),
		VenuePhotos:  NewFileCollection(db, VenuePhotosColName, "venue_id"),
	}
}

// Collection wraps one mongo collection for a single document type.
type Collection[T any] struct {
	col *mongo.Collection
}

func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{col: db.Collection(name)}
}

func (c *Collection[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	result, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting document: %v", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

// FindMany returns documents in store-native order. The result size is
// capped at MaxListLimit no matter what the caller asks for.
func (c *Collection[T]) FindMany(ctx context.Context, limit int64) ([]T, error) {
	opts := options.Find().SetLimit(clampLimit(limit))
	cursor, err := c.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding documents: %v", err)
	}
	defer cursor.Close(ctx)

	var docs []T
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding document: %v", err)
		}
		docs = append(docs, doc)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return docs, nil
}

// FindByID returns (nil, nil) when no document matches.
func (c *Collection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var doc T
	err := c.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding document by id: %v", err)
	}
	return &doc, nil
}

// ReplaceByID overwrites every field of the stored document. The replacement
// must carry a zero ID so _id stays untouched. Returns false when no
// document matches.
func (c *Collection[T]) ReplaceByID(ctx context.Context, id primitive.ObjectID, doc *T) (bool, error) {
	result, err := c.col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return false, fmt.Errorf("error replacing document: %v", err)
	}
	return result.MatchedCount > 0, nil
}

// DeleteByID returns false when no document matches.
func (c *Collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting document: %v", err)
	}
	return result.DeletedCount > 0, nil
}

func clampLimit(limit int64) int64 {
	if limit <= 0 || limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// FileCollection wraps one media collection. parentField is the document
// field the parent id is stored under (event_id or venue_id), which varies
// per collection and is kept as-is for compatibility with existing data.
type FileCollection struct {
	col         *mongo.Collection
	parentField string
}

func NewFileCollection(db *mongo.Database, name, parentField string) *FileCollection {
	return &FileCollection{col: db.Collection(name), parentField: parentField}
}

func (fc *FileCollection) Insert(ctx context.Context, parentID string, rec *FileRecord) (primitive.ObjectID, error) {
	if rec.UploadedAt.IsZero() {
		rec.UploadedAt = time.Now().UTC()
	}
	doc := bson.M{
		fc.parentField: parentID,
		"filename":     rec.Filename,
		"content_type": rec.ContentType,
		"content":      rec.Content,
		"uploaded_at":  rec.UploadedAt,
	}
	result, err := fc.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("error inserting file record: %v", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid, nil
}

// FindLatestByParent returns the most recently uploaded record for a parent
// id, or (nil, nil) when none exists.
func (fc *FileCollection) FindLatestByParent(ctx context.Context, parentID string) (*FileRecord, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	var rec FileRecord
	err := fc.col.FindOne(ctx, bson.M{fc.parentField: parentID}, opts).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding file record: %v", err)
	}
	return &rec, nil
}
