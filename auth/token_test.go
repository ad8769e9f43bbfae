package auth

import (
	"testing"

	"github.com/Orekusandoru/online-store/config"
	"github.com/Orekusandoru/online-store/models"
)

var testJWT = config.JWT{Secret: "test-secret", TTLHours: 1}

func TestIssueAndParseToken(t *testing.T) {
	user := models.User{ID: 42, Email: "buyer@example.com", Role: models.RoleSeller}

	token, err := IssueToken(testJWT, user)
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	claims, err := ParseToken(testJWT, token)
	if err != nil {
		t.Fatalf("ParseToken returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id: got %d want 42", claims.UserID)
	}
	if claims.Email != "buyer@example.com" {
		t.Errorf("email: got %s", claims.Email)
	}
	if claims.Role != models.RoleSeller {
		t.Errorf("role: got %s want seller", claims.Role)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken(testJWT, models.User{ID: 1, Email: "a@b.c", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	if _, err := ParseToken(config.JWT{Secret: "other", TTLHours: 1}, token); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	expired := config.JWT{Secret: "test-secret", TTLHours: -1}
	token, err := IssueToken(expired, models.User{ID: 1, Email: "a@b.c", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("IssueToken returned error: %v", err)
	}

	if _, err := ParseToken(testJWT, token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken(testJWT, "not-a-token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
