package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTableTokenRoundTrip(t *testing.T) {
	tok, err := IssueTableToken("secret", "table-1", time.Minute)
	if err != nil {
		t.Fatalf("IssueTableToken: %v", err)
	}
	id, err := ParseTableToken("secret", tok)
	if err != nil {
		t.Fatalf("ParseTableToken: %v", err)
	}
	if id != "table-1" {
		t.Errorf("table id = %q", id)
	}
}

func TestParseTableTokenRejects(t *testing.T) {
	good, _ := IssueTableToken("secret", "table-1", time.Minute)
	expired, _ := IssueTableToken("secret", "table-1", -time.Minute)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{"wrong secret", "other", good},
		{"expired", "secret", expired},
		{"garbage", "secret", "not.a.token"},
		{"empty", "secret", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTableToken(tt.secret, tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestPassphrase(t *testing.T) {
	hash, err := HashPassphrase("chalk")
	if err != nil {
		t.Fatalf("HashPassphrase: %v", err)
	}
	if err := CheckPassphrase(hash, "chalk"); err != nil {
		t.Errorf("correct passphrase rejected: %v", err)
	}
	if err := CheckPassphrase(hash, "cue"); !errors.Is(err, ErrWrongPassphrase) {
		t.Errorf("err = %v, want ErrWrongPassphrase", err)
	}
	if err := CheckPassphrase(hash, ""); !errors.Is(err, ErrPassphraseMissing) {
		t.Errorf("err = %v, want ErrPassphraseMissing", err)
	}
}

func TestPublicTableAcceptsAnyPassphrase(t *testing.T) {
	hash, err := HashPassphrase("")
	if err != nil || hash != "" {
		t.Fatalf("HashPassphrase(\"\") = %q, %v", hash, err)
	}
	if err := CheckPassphrase(hash, "anything"); err != nil {
		t.Errorf("public table rejected passphrase: %v", err)
	}
}
