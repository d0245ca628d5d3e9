package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash := HashPassword("secret123")

	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "secret124") {
		t.Error("wrong password accepted")
	}
}
