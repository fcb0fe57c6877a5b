package utils

import (
	"testing"
	"time"
)

func TestStringToUint64(t *testing.T) {
	cases := map[string]uint64{
		"0":   0,
		"1":   1,
		"99":  99,
		"":    0,
		"abc": 0,
		"-5":  0,
		"1.5": 0,
	}
	for in, want := range cases {
		if got := StringToUint64(in); got != want {
			t.Errorf("StringToUint64(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestGatewayKeyRoundTrip(t *testing.T) {
	hash, err := HashGatewayKey("gateway-key")
	if err != nil {
		t.Fatalf("HashGatewayKey: %v", err)
	}
	if !CheckGatewayKey("gateway-key", hash) {
		t.Error("expected matching key to verify")
	}
	if CheckGatewayKey("other-key", hash) {
		t.Error("expected mismatched key to fail")
	}
}

func TestCacheExpiry(t *testing.T) {
	c, err := NewCache(10)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	c.Set("k", "v", time.Minute)
	if got := c.Get("k"); got != "v" {
		t.Errorf("expected cache hit, got %v", got)
	}

	c.Set("short", "v", -time.Second)
	if got := c.Get("short"); got != nil {
		t.Errorf("expected expired entry to miss, got %v", got)
	}

	c.Delete("k")
	if got := c.Get("k"); got != nil {
		t.Errorf("expected deleted entry to miss, got %v", got)
	}
}
