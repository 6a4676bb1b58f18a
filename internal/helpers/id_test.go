package helpers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseIDRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	wire := RenderID(oid)

	parsed, err := ParseID(wire)
	if err != nil {
		t.Fatalf("ParseID(%q) failed: %v", wire, err)
	}
	if parsed != oid {
		t.Errorf("round trip mismatch: got %v, want %v", parsed, oid)
	}
	if RenderID(parsed) != wire {
		t.Errorf("re-rendered id mismatch: got %q, want %q", RenderID(parsed), wire)
	}
}

func TestParseIDInvalid(t *testing.T) {
	invalid := []string{
		"",
		"not-an-id",
		"123",
		"zzzzzzzzzzzzzzzzzzzzzzzz",   // right length, not hex
		"000000000000000000000000ff", // too long
		"00000000000000000000000",    // too short
		"68b1c2d3e4f5a6b7c8d9e0f1 ",  // trailing space
		"68b1-2d3e-4f5a-6b7c-8d9e",   // uuid-ish
	}

	for _, s := range invalid {
		if _, err := ParseID(s); err != ErrInvalidID {
			t.Errorf("ParseID(%q): got %v, want ErrInvalidID", s, err)
		}
	}
}

func TestParseIDValidHex(t *testing.T) {
	// Syntactically valid even if no document exists with this id.
	parsed, err := ParseID("000000000000000000000000")
	if err != nil {
		t.Fatalf("ParseID rejected a valid hex id: %v", err)
	}
	if !parsed.IsZero() {
		t.Errorf("expected the zero ObjectId, got %v", parsed)
	}
}
