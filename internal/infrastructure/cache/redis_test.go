package cache

import (
	"strings"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestAnalysisKey(t *testing.T) {
	key := AnalysisKey("url", "http://example.com")

	if !strings.HasPrefix(key, KeyAnalysisPrefix) {
		t.Errorf("key %q missing prefix %q", key, KeyAnalysisPrefix)
	}
	if key != AnalysisKey("url", "http://example.com") {
		t.Error("same input must derive the same key")
	}
	if key == AnalysisKey("message", "http://example.com") {
		t.Error("input type must be part of the key")
	}
	// hashed keys never contain raw user input
	if strings.Contains(key, "example.com") {
		t.Errorf("raw input leaked into key: %q", key)
	}
}

func TestIsMiss(t *testing.T) {
	if !IsMiss(redis.Nil) {
		t.Error("redis.Nil must be a miss")
	}
	if IsMiss(nil) {
		t.Error("nil error is not a miss")
	}
}
