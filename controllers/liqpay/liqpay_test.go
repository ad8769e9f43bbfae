package liqpayControllers

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

func TestSignKnownVector(t *testing.T) {
	// base64(sha1(private + data + private)) for fixed inputs
	got := Sign("sandbox_private_key", "eyJhY3Rpb24iOiJwYXkifQ==")
	want := "pnB/fdJU4PB5umYtJGdShEoZbXk="
	if got != want {
		t.Fatalf("Sign mismatch: got %s want %s", got, want)
	}
}

func TestVerifySignature(t *testing.T) {
	const key = "private-key"
	data, err := EncodePayload(map[string]string{"status": "success", "order_id": "7_1700000000000"})
	if err != nil {
		t.Fatalf("EncodePayload returned error: %v", err)
	}

	sig := Sign(key, data)

	if !VerifySignature(key, data, sig) {
		t.Fatal("valid signature rejected")
	}
	if VerifySignature(key, data+"x", sig) {
		t.Fatal("tampered payload accepted")
	}
	if VerifySignature("other-key", data, sig) {
		t.Fatal("signature from wrong key accepted")
	}
	if VerifySignature(key, data, "") {
		t.Fatal("empty signature accepted")
	}
}

func TestEncodePayloadRoundTrip(t *testing.T) {
	params := map[string]string{
		"public_key": "pub",
		"version":    "3",
		"action":     "pay",
		"amount":     "199.5",
		"currency":   "UAH",
		"order_id":   "42_1700000000000",
	}

	data, err := EncodePayload(params)
	if err != nil {
		t.Fatalf("EncodePayload returned error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	for k, v := range params {
		if decoded[k] != v {
			t.Errorf("param %s: got %q want %q", k, decoded[k], v)
		}
	}
}

func TestExternalOrderRef(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	if got, want := ExternalOrderRef(42, now), "42_1700000000000"; got != want {
		t.Fatalf("ExternalOrderRef: got %s want %s", got, want)
	}
}
