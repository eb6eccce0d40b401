package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	appErrors "fleetops/pkg/errors"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	driverID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "driver1", "driver", &driverID, "secret", 24)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if expiresAt == 0 {
		t.Error("expiry not set")
	}

	claims, err := ValidateToken(token, "secret")
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("claims user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "driver" {
		t.Errorf("claims role = %s, want driver", claims.Role)
	}
	if claims.DriverID == nil || *claims.DriverID != driverID {
		t.Error("driver id missing from claims")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New(), "admin", "admin", nil, "secret", 24)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = ValidateToken(token, "other-secret")
	if !errors.Is(err, appErrors.ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "secret")
	if !errors.Is(err, appErrors.ErrInvalidToken) {
		t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
	}
}
