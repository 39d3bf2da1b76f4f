package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/tanvi/examtrack/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "examtrack.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "student@example.com",
		RoleType: models.RoleStudent,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testJWTService(15 * time.Minute)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty token pair")
	}
	if expiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("expiresIn = %d, want %d", expiresIn, int((15*time.Minute).Seconds()))
	}
	if refreshExpiresIn != int((24 * time.Hour).Seconds()) {
		t.Errorf("refreshExpiresIn = %d, want %d", refreshExpiresIn, int((24*time.Hour).Seconds()))
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "student@example.com" {
		t.Errorf("Email = %q, want student@example.com", claims.Email)
	}
	if claims.RoleType != string(models.RoleStudent) {
		t.Errorf("RoleType = %q, want %q", claims.RoleType, models.RoleStudent)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-1 * time.Minute)

	accessToken, _, _, _, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	_, err = svc.ValidateToken(accessToken)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	accessToken, _, _, _, err := testJWTService(15 * time.Minute).GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: 15 * time.Minute,
	})
	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := testJWTService(15 * time.Minute)
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for garbage input")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc123", "abc123", false},
		{"abc123", "abc123", false}, // bare token accepted as-is
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("ExtractBearerToken(%q) error = %v, want ErrInvalidFormat", tt.header, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ExtractBearerToken(%q) returned error: %v", tt.header, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}
