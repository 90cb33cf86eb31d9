package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/pkg/e"
)

func TestSessionLoginRoles(t *testing.T) {
	uc := NewSessionUC(newFakeSessionRepo(), nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *CredentialsReq
		want    domain.Role
		wantErr error
	}{
		{"default role", &CredentialsReq{Email: "a@b.c", Password: "x"}, domain.RoleUser, nil},
		{"agent role", &CredentialsReq{Email: "a@b.c", Password: "x", Role: "agent"}, domain.RoleAgent, nil},
		{"unknown role", &CredentialsReq{Email: "a@b.c", Password: "x", Role: "admin"}, "", e.ErrStatusBadRequest},
		{"missing email", &CredentialsReq{Password: "x"}, "", e.ErrMissingFields},
		{"blank password", &CredentialsReq{Email: "a@b.c", Password: "   "}, "", e.ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := uc.Login(ctx, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if session.Role != tt.want {
				t.Errorf("expected role %s, got %s", tt.want, session.Role)
			}
			if session.Token == "" {
				t.Error("expected non-empty token")
			}
		})
	}
}

func TestSessionResolveAndLogout(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := NewSessionUC(repo, nopLogger{})
	ctx := context.Background()

	issued, err := uc.Register(ctx, &CredentialsReq{Email: "a@b.c", Password: "x"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resolved, err := uc.Resolve(ctx, issued.Token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.UserID != "a@b.c" {
		t.Errorf("expected user a@b.c, got %s", resolved.UserID)
	}

	if _, err := uc.Resolve(ctx, ""); !errors.Is(err, e.ErrSessionNotFound) {
		t.Errorf("empty token: expected ErrSessionNotFound, got %v", err)
	}

	if err := uc.Logout(ctx, issued.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := uc.Resolve(ctx, issued.Token); !errors.Is(err, e.ErrSessionNotFound) {
		t.Errorf("after logout: expected ErrSessionNotFound, got %v", err)
	}
}
