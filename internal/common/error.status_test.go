package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	got := ConvertMongoError(dup)
	if !errors.Is(got, ErrMongoDuplicate) {
		t.Errorf("duplicate key mapped to %v, want ErrMongoDuplicate", got)
	}

	var customErr *Error
	if !errors.As(got, &customErr) || customErr.StatusCode != StatusConflict {
		t.Errorf("duplicate key must carry status %d, got %+v", StatusConflict, got)
	}
}

func TestConvertMongoError_NotFoundPassesThrough(t *testing.T) {
	if got := ConvertMongoError(ErrNotFound); !errors.Is(got, ErrNotFound) {
		t.Errorf("ErrNotFound must pass through, got %v", got)
	}
}

func TestConvertMongoError_Nil(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("nil must stay nil, got %v", got)
	}
}
