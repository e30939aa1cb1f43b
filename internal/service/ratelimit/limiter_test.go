package ratelimit

import (
	"testing"
	"time"
)

func TestAllowConsumesBucket(t *testing.T) {
	l := New()
	if !l.Allow("k", 2, 0.0001) {
		t.Fatalf("first token should be granted")
	}
	if !l.Allow("k", 2, 0.0001) {
		t.Fatalf("second token should be granted")
	}
	if l.Allow("k", 2, 0.0001) {
		t.Fatalf("bucket should be empty")
	}
}

func TestAllowRefills(t *testing.T) {
	l := New()
	if !l.Allow("k", 1, 100) {
		t.Fatalf("first token should be granted")
	}
	if l.Allow("k", 1, 100) {
		t.Fatalf("bucket should be empty right after")
	}
	time.Sleep(30 * time.Millisecond)
	if !l.Allow("k", 1, 100) {
		t.Fatalf("bucket should have refilled")
	}
}

func TestAllowIndependentKeys(t *testing.T) {
	l := New()
	if !l.Allow("a", 1, 0.0001) {
		t.Fatalf("key a should be granted")
	}
	if !l.Allow("b", 1, 0.0001) {
		t.Fatalf("key b should be granted")
	}
}
