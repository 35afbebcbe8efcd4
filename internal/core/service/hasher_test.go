package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	digest, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if digest == "secret1" || digest == "" {
		t.Fatalf("expected opaque digest, got %q", digest)
	}

	if !h.Verify("secret1", digest) {
		t.Fatalf("expected digest to verify against original password")
	}
	if h.Verify("secret2", digest) {
		t.Fatalf("expected different password to fail verification")
	}
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewBcryptHasher(4)

	first, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	second, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected embedded salt to make digests differ")
	}
	if !h.Verify("same-password", first) || !h.Verify("same-password", second) {
		t.Fatalf("both digests must verify")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(4)

	if h.Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("malformed digest must fail verification, not panic or pass")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty digest must fail verification")
	}
}

func TestNewBcryptHasher_CostClamped(t *testing.T) {
	h := NewBcryptHasher(0)
	if h.cost != defaultHashCost {
		t.Fatalf("expected default cost %d, got %d", defaultHashCost, h.cost)
	}

	h = NewBcryptHasher(99)
	if h.cost != defaultHashCost {
		t.Fatalf("expected default cost for out-of-range input, got %d", h.cost)
	}
}
