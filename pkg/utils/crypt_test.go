package utils

import (
	"strings"
	"testing"
)

func TestCryptAndVerify(t *testing.T) {
	hash, err := Crypt("hunter2secret")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	if hash == "hunter2secret" {
		t.Fatal("Crypt returned the plaintext")
	}
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") {
		t.Errorf("unexpected hash format: %s", hash)
	}
	if !VerifyPassword("hunter2secret", hash) {
		t.Error("VerifyPassword rejected the correct password")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("VerifyPassword accepted a wrong password")
	}
}

func TestCryptSaltsEveryHash(t *testing.T) {
	h1, err := Crypt("samepassword")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	h2, err := Crypt("samepassword")
	if err != nil {
		t.Fatalf("Crypt failed: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}

func TestVerifyPasswordBadHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Error("VerifyPassword accepted a malformed hash")
	}
}
