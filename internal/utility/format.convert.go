package utility

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID converts a hex string to an ObjectID.
// Returns NilObjectID for invalid input.
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}
