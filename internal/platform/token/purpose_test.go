package token

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPurposeIssuer_IssueAndValidate(t *testing.T) {
	issuer := NewPurposeIssuer("reset-secret", ResetAudience, time.Hour)
	userID := uuid.New()

	signed, err := issuer.Issue(userID, "fingerprint-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gotID, payload, err := issuer.Validate(signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != userID {
		t.Errorf("expected user ID %v, got %v", userID, gotID)
	}
	if payload != "fingerprint-abc" {
		t.Errorf("expected payload 'fingerprint-abc', got %q", payload)
	}
}

func TestPurposeIssuer_PurposeIsolation(t *testing.T) {
	userID := uuid.New()
	reset := NewPurposeIssuer("reset-secret", ResetAudience, time.Hour)
	verify := NewPurposeIssuer("verify-secret", VerifyAudience, time.Hour)

	resetToken, err := reset.Issue(userID, "fingerprint")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A reset token must not validate for verification even if both sides
	// shared a secret by mistake.
	if _, _, err := verify.Validate(resetToken); !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got: %v", err)
	}

	sameSecretVerify := NewPurposeIssuer("reset-secret", VerifyAudience, time.Hour)
	if _, _, err := sameSecretVerify.Validate(resetToken); !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed on audience mismatch, got: %v", err)
	}
}

func TestPurposeIssuer_Expired(t *testing.T) {
	issuer := NewPurposeIssuer("reset-secret", ResetAudience, -time.Minute)

	signed, err := issuer.Issue(uuid.New(), "fingerprint")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := issuer.Validate(signed); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestPurposeIssuer_Garbage(t *testing.T) {
	issuer := NewPurposeIssuer("reset-secret", ResetAudience, time.Hour)

	if _, _, err := issuer.Validate("not-a-token"); !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got: %v", err)
	}
}
