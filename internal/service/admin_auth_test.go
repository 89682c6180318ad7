package service

import (
	"strings"
	"testing"
)

func TestAdminLoginRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := AdminLogin("hunter2", "hunter2")
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	if err := ParseAdminToken(token); err != nil {
		t.Fatalf("ParseAdminToken: %v", err)
	}
}

func TestAdminLoginWrongPassword(t *testing.T) {
	InitJWT("test-secret")

	if _, err := AdminLogin("hunter2", "letmein"); err == nil {
		t.Fatal("expected wrong password to fail")
	}
	if _, err := AdminLogin("", "anything"); err == nil {
		t.Fatal("expected unconfigured password to fail")
	}
}

func TestParseAdminTokenTampered(t *testing.T) {
	InitJWT("test-secret")

	token, err := AdminLogin("hunter2", "hunter2")
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA"
	if err := ParseAdminToken(tampered); err == nil {
		t.Fatal("expected tampered signature to fail")
	}

	if err := ParseAdminToken("not-a-token"); err == nil {
		t.Fatal("expected garbage token to fail")
	}
}
