package util

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converts a 24-hex identifier to its binary form. msg is the
// caller-facing text used when the value is malformed.
func ParseID(hex string, msg string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, InvalidArgument("%s", msg)
	}
	return id, nil
}

func IsValidID(hex string) bool {
	return primitive.IsValidObjectID(hex)
}
