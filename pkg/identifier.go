package pkg

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseId checks a caller-supplied entity identifier before any store
// lookup, so a malformed id never reaches the database as a query.
func ParseId(raw string) (primitive.ObjectID, error) {
	if raw == "" {
		return primitive.NilObjectID, NewMsgError(ErrMissingField, "identifier is required", nil)
	}
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, NewError(ErrInvalidId, err)
	}
	return oid, nil
}
