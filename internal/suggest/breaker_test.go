package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	fake := &fakeProvider{err: errors.New("upstream down")}
	b := NewBreaker(fake, zerolog.Nop())

	for i := 0; i < BreakerFailureThreshold; i++ {
		if _, err := b.Suggest(context.Background(), "你好"); err == nil || errors.Is(err, ErrUnavailable) {
			t.Fatalf("Call %d: expected upstream error, got %v", i, err)
		}
	}

	_, err := b.Suggest(context.Background(), "你好")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Expected ErrUnavailable once open, got %v", err)
	}
	if fake.calls != BreakerFailureThreshold {
		t.Errorf("Open breaker should not call provider, calls = %d", fake.calls)
	}
	if !errors.Is(b.IsAvailable(), ErrUnavailable) {
		t.Error("IsAvailable should report the open breaker")
	}
}

func TestBreakerRecovers(t *testing.T) {
	fake := &fakeProvider{err: errors.New("upstream down")}
	b := newBreaker(fake, zerolog.Nop(), 20*time.Millisecond)

	for i := 0; i < BreakerFailureThreshold; i++ {
		_, _ = b.Suggest(context.Background(), "你好")
	}
	if b.IsAvailable() == nil {
		t.Fatal("Expected breaker to be open")
	}

	time.Sleep(40 * time.Millisecond)
	fake.err = nil
	fake.result = Suggestion{Pinyin: "nǐ hǎo", English: "hello", Vietnamese: "xin chào"}

	got, err := b.Suggest(context.Background(), "你好")
	if err != nil {
		t.Fatalf("Expected half-open probe to succeed, got %v", err)
	}
	if got != fake.result {
		t.Errorf("Suggest() = %+v", got)
	}
	if err := b.IsAvailable(); err != nil {
		t.Errorf("Expected breaker to close, got %v", err)
	}
}

func TestBreakerIgnoresCallerErrors(t *testing.T) {
	fake := &fakeProvider{}
	b := NewBreaker(fake, zerolog.Nop())

	for i := 0; i < BreakerFailureThreshold+2; i++ {
		if _, err := b.Suggest(context.Background(), ""); !errors.Is(err, ErrEmptyHanzi) {
			t.Fatalf("Expected ErrEmptyHanzi, got %v", err)
		}
	}
	if err := b.IsAvailable(); err != nil {
		t.Errorf("Empty input must not trip the breaker: %v", err)
	}
}
