package helpers

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a path id is not a valid ObjectId hex string.
// Handlers must surface it as a 400 before any database lookup.
var ErrInvalidID = errors.New("invalid id format")

// ParseID validates and converts the wire form of a document id to its
// native ObjectId. The wire form is the 24-character hex string produced
// by RenderID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// RenderID converts a native ObjectId back to its wire string. Responses
// never expose the native type.
func RenderID(id primitive.ObjectID) string {
	return id.Hex()
}
