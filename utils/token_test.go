package utils

import "testing"

func TestConversationTokenRoundTrip(t *testing.T) {
	token, err := GenerateConversationToken("conv-123")
	if err != nil {
		t.Fatalf("GenerateConversationToken: %v", err)
	}

	id, err := ParseConversationToken(token)
	if err != nil {
		t.Fatalf("ParseConversationToken: %v", err)
	}
	if id != "conv-123" {
		t.Errorf("got conversation id %q, want conv-123", id)
	}
}

func TestParseConversationTokenRejectsGarbage(t *testing.T) {
	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseConversationToken(tokenString); err == nil {
			t.Errorf("ParseConversationToken(%q) accepted an invalid token", tokenString)
		}
	}
}

func TestParseConversationTokenRejectsTampering(t *testing.T) {
	token, err := GenerateConversationToken("conv-123")
	if err != nil {
		t.Fatalf("GenerateConversationToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseConversationToken(tampered); err == nil {
		t.Error("a token with a corrupted signature must be rejected")
	}
}
