package adapters

import (
	"strings"
	"testing"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash equals the plain password")
	}
	if !strings.HasPrefix(hash, "$2a$12$") {
		t.Errorf("unexpected hash prefix: %q", hash[:7])
	}

	if err := svc.VerifyPassword(hash, "s3cret-pass"); err != nil {
		t.Errorf("VerifyPassword rejected the right password: %v", err)
	}
	if err := svc.VerifyPassword(hash, "wrong-pass"); err == nil {
		t.Error("VerifyPassword accepted the wrong password")
	}
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	svc := NewPasswordService()

	if err := svc.ValidatePasswordStrength("short"); err == nil {
		t.Error("expected rejection of a 5-character password")
	}
	if err := svc.ValidatePasswordStrength("12345678"); err != nil {
		t.Errorf("8 characters should pass: %v", err)
	}
}
