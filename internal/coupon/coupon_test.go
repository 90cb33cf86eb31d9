package coupon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maison-aurelle/storefront/pkg/e"
)

func TestService_Resolve(t *testing.T) {
	svc := NewService(DefaultTable, 0)

	tests := []struct {
		name        string
		code        string
		wantPercent int64
		wantErr     error
	}{
		{
			name:        "known code",
			code:        "LUXURY10",
			wantPercent: 10,
		},
		{
			name:        "mixed case is accepted",
			code:        "vip30",
			wantPercent: 30,
		},
		{
			name:        "second tier luxury code",
			code:        "luxury20",
			wantPercent: 20,
		},
		{
			name:        "surrounding whitespace is trimmed",
			code:        "  Gold20  ",
			wantPercent: 20,
		},
		{
			name:    "unknown code",
			code:    "bogus",
			wantErr: e.ErrInvalidCoupon,
		},
		{
			name:    "empty code",
			code:    "",
			wantErr: e.ErrInvalidCoupon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, err := svc.Resolve(context.Background(), tt.code)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve(%q) error = %v, want %v", tt.code, err, tt.wantErr)
			}
			if percent != tt.wantPercent {
				t.Errorf("Resolve(%q) = %d, want %d", tt.code, percent, tt.wantPercent)
			}
		})
	}
}

func TestService_ResolveHonorsContext(t *testing.T) {
	svc := NewService(DefaultTable, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Resolve(ctx, "LUXURY10")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestService_LastWriteWins(t *testing.T) {
	svc := NewService(DefaultTable, 0)

	// An older attempt must observe that a newer one has started.
	first := svc.Begin("user-1")
	second := svc.Begin("user-1")

	if svc.Current("user-1", first) {
		t.Error("superseded attempt still reported as current")
	}
	if !svc.Current("user-1", second) {
		t.Error("latest attempt must be current")
	}

	// Attempts are tracked per key.
	other := svc.Begin("user-2")
	if !svc.Current("user-2", other) {
		t.Error("attempt for a different key must be independent")
	}
	if !svc.Current("user-1", second) {
		t.Error("other keys must not invalidate this one")
	}
}
