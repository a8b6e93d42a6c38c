package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToMap_UsesBsonTags(t *testing.T) {
	type doc struct {
		Name  string `bson:"companyName"`
		Score int    `bson:"score"`
	}

	m, err := ToMap(doc{Name: "Acme", Score: 42})
	if err != nil {
		t.Fatalf("ToMap failed: %v", err)
	}
	if m["companyName"] != "Acme" {
		t.Errorf("companyName = %v, want Acme", m["companyName"])
	}
	if _, ok := m["score"]; !ok {
		t.Errorf("score key missing: %v", m)
	}
	if _, ok := m["Name"]; ok {
		t.Error("struct field name must not leak, bson tag decides the key")
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b"}, "b") {
		t.Error("Contains must find an existing item")
	}
	if Contains([]string{"a", "b"}, "c") {
		t.Error("Contains must not find a missing item")
	}
	if Contains(nil, "a") {
		t.Error("Contains on nil slice must be false")
	}
}

func TestString2ObjectID(t *testing.T) {
	hex := "507f1f77bcf86cd799439011"
	if got := String2ObjectID(hex); got.Hex() != hex {
		t.Errorf("String2ObjectID(%q) = %v", hex, got)
	}
	if got := String2ObjectID("not-an-id"); got != primitive.NilObjectID {
		t.Errorf("invalid input must yield NilObjectID, got %v", got)
	}
}
