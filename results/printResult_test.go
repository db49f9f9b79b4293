package results

import (
	"strings"
	"testing"
)

func TestQRPayloadRoundTrip(t *testing.T) {
	payload := GenerateQRPayload("64f1c2a9e4b0d5a1b2c3d4e5")

	id, ok := VerifyQRPayload(payload)
	if !ok {
		t.Fatal("expected valid payload to verify")
	}
	if id != "64f1c2a9e4b0d5a1b2c3d4e5" {
		t.Errorf("got id %q", id)
	}
}

func TestQRPayloadTampered(t *testing.T) {
	payload := GenerateQRPayload("64f1c2a9e4b0d5a1b2c3d4e5")
	tampered := strings.Replace(payload, "64f1c2a9", "deadbeef", 1)

	if _, ok := VerifyQRPayload(tampered); ok {
		t.Error("tampered payload should not verify")
	}
}

func TestQRPayloadMalformed(t *testing.T) {
	for _, payload := range []string{"", "just-one-part", "a|b", "a|b|c|d"} {
		if _, ok := VerifyQRPayload(payload); ok {
			t.Errorf("payload %q should not verify", payload)
		}
	}
}
