package password_test

import (
	"errors"
	"frontdesk/shared/password"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
		anyError      bool
	}{
		{name: "valid password", password: "validPassword123"},
		{name: "empty password", password: "", expectedError: password.ErrEmptyPassword},
		{name: "unicode password", password: "รหัสผ่าน123"},
		{name: "longer than bcrypt limit", password: strings.Repeat("a", 100), anyError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			switch {
			case tt.expectedError != nil:
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected %v, got %v", tt.expectedError, err)
				}
			case tt.anyError:
				if err == nil {
					t.Error("expected error, got nil")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !password.IsHash(hash) {
					t.Errorf("expected bcrypt hash, got %q", hash)
				}
			}
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("s3cret")
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	tests := []struct {
		name     string
		password string
		stored   string
		wantErr  bool
	}{
		{name: "opaque token match", password: "admin123", stored: "admin123"},
		{name: "opaque token mismatch", password: "admin124", stored: "admin123", wantErr: true},
		{name: "opaque token is case sensitive", password: "ADMIN123", stored: "admin123", wantErr: true},
		{name: "bcrypt match", password: "s3cret", stored: hash},
		{name: "bcrypt mismatch", password: "wrong", stored: hash, wantErr: true},
		{name: "hash text is not accepted as password", password: hash, stored: hash, wantErr: true},
		{name: "empty password", password: "", stored: "admin123", wantErr: true},
		{name: "empty stored", password: "admin123", stored: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.stored)

			if tt.wantErr && !errors.Is(err, password.ErrInvalidPassword) {
				t.Errorf("expected ErrInvalidPassword, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestIsHash(t *testing.T) {
	if password.IsHash("admin123") {
		t.Error("plain token reported as hash")
	}
	if !password.IsHash("$2a$10$abcdefghijklmnopqrstuv") {
		t.Error("bcrypt prefix not recognised")
	}
}
