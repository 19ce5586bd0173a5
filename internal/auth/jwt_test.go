package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	adminID, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate freshly issued token: %v", err)
	}
	if adminID != 42 {
		t.Fatalf("expected admin ID 42, got %d", adminID)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
	if _, err := ValidateToken(""); err == nil {
		t.Fatal("expected an error for an empty token")
	}
}
