package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// memoryTokenRepo keeps refresh token state in a map.
type memoryTokenRepo struct {
	valid map[string]bool
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{valid: map[string]bool{}}
}

func (r *memoryTokenRepo) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	r.valid[token] = true
	return nil
}

func (r *memoryTokenRepo) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return r.valid[token], nil
}

func (r *memoryTokenRepo) InvalidateRefreshToken(ctx context.Context, token string) error {
	r.valid[token] = false
	return nil
}

func (r *memoryTokenRepo) InvalidateAllUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	for token := range r.valid {
		r.valid[token] = false
	}
	return nil
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryTokenRepo()
	service := NewTokenService("unit-test-secret", repo)

	userID := uuid.New()
	email := "user@example.com"

	pair, err := service.GenerateTokenPair(ctx, userID, email, false)
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be set")
	}

	if pair.AccessToken == pair.RefreshToken {
		t.Error("expected distinct access and refresh tokens")
	}

	t.Run("access token carries identity", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("failed to validate access token: %v", err)
		}

		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}

		if claims.Email != email {
			t.Errorf("expected email %s, got %s", email, claims.Email)
		}
	})

	t.Run("refresh token is persisted as valid", func(t *testing.T) {
		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("failed to check refresh token: %v", err)
		}
		if !valid {
			t.Error("expected refresh token to be valid after generation")
		}
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected refresh token to fail access validation")
		}

		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected access token to fail refresh validation")
		}
	})

	t.Run("invalidation sticks", func(t *testing.T) {
		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("failed to invalidate: %v", err)
		}

		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("failed to check refresh token: %v", err)
		}
		if valid {
			t.Error("expected refresh token to be invalid after invalidation")
		}
	})
}

func TestTokenService_RejectsForeignSignatures(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	service := NewTokenService("secret-one", newMemoryTokenRepo())
	otherService := NewTokenService("secret-two", newMemoryTokenRepo())

	pair, err := service.GenerateTokenPair(ctx, userID, "user@example.com", false)
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if _, err := otherService.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}
}

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := service.HashPassword("correct horse battery")
		if err != nil {
			t.Fatalf("failed to hash: %v", err)
		}

		if hash == "correct horse battery" {
			t.Error("expected hash to differ from the plain password")
		}

		if err := service.VerifyPassword(hash, "correct horse battery"); err != nil {
			t.Errorf("expected password to verify: %v", err)
		}

		if err := service.VerifyPassword(hash, "wrong password"); err == nil {
			t.Error("expected wrong password to fail verification")
		}
	})

	t.Run("strength check enforces minimum length", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected short password to be rejected")
		}

		if err := service.ValidatePasswordStrength("12345678"); err != nil {
			t.Errorf("expected 8-character password to pass: %v", err)
		}
	})
}
