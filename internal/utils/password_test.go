package utils

import "testing"

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret-pw", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword(hash, "secret-pw") {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword(hash, "wrong-pw") {
		t.Fatalf("wrong password accepted")
	}
}

func TestPasswordZeroCostFallsBackToDefault(t *testing.T) {
	hash, err := HashPassword("secret-pw", 0)
	if err != nil {
		t.Fatalf("hash with zero cost: %v", err)
	}
	if !VerifyPassword(hash, "secret-pw") {
		t.Fatalf("hash from fallback cost does not verify")
	}
}
