package password

import (
	"strings"
	"testing"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "regular password", password: "s3cret"},
		{name: "password with special chars", password: "p@ssw0rd!@#$%^&*()"},
		{name: "long password", password: "verylongpasswordwithmorethanfortycharacters"},
		{name: "empty password", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := GetHash(tt.password)
			if err != nil {
				t.Fatalf("GetHash() error = %v", err)
			}

			if gotHash == "" {
				t.Error("GetHash() returned empty hash")
			}

			if gotHash == tt.password {
				t.Error("GetHash() returned the cleartext password")
			}

			if err := CompareHash(gotHash, tt.password); err != nil {
				t.Errorf("generated hash doesn't match original password: %v", err)
			}
		})
	}
}

func TestGetHash_WorkFactor(t *testing.T) {
	hash, err := GetHash("s3cret")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}

	// модульная строка bcrypt содержит стоимость: $2a$10$...
	if !strings.Contains(hash, "$10$") {
		t.Errorf("hash %q does not carry cost 10", hash)
	}
}

func TestCompareHash(t *testing.T) {
	correctHash, err := GetHash("correct_password")
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name        string
		hash        string
		password    string
		shouldMatch bool
	}{
		{name: "matching password", hash: correctHash, password: "correct_password", shouldMatch: true},
		{name: "wrong password", hash: correctHash, password: "wrong_password", shouldMatch: false},
		{name: "empty password", hash: correctHash, password: "", shouldMatch: false},
		{name: "not a hash at all", hash: "correct_password", password: "correct_password", shouldMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)

			if tt.shouldMatch && err != nil {
				t.Errorf("CompareHash() should succeed, got error: %v", err)
			}

			if !tt.shouldMatch && err == nil {
				t.Error("CompareHash() should fail, but got no error")
			}
		})
	}
}
