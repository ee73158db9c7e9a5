package auth

import (
	"testing"
	"time"

	"ticketing-service/internal/model"

	"github.com/google/uuid"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	user := &model.User{ID: uuid.New(), Email: "a@b.c", Role: model.RoleOrganizer}
	now := time.Now()

	token, expiresAt, err := svc.Issue(user, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if want := now.Add(time.Hour); !expiresAt.Equal(want) {
		t.Errorf("expiresAt = %v, want %v", expiresAt, want)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != user.ID.String() {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Role != string(model.RoleOrganizer) {
		t.Errorf("Role = %q, want %q", claims.Role, model.RoleOrganizer)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	user := &model.User{ID: uuid.New(), Role: model.RoleCustomer}

	token, _, err := NewService("secret-one", time.Hour).Issue(user, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewService("secret-two", time.Hour).Verify(token); err == nil {
		t.Error("Verify accepted a token signed with a different secret")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	user := &model.User{ID: uuid.New(), Role: model.RoleCustomer}

	token, _, err := svc.Issue(user, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Error("Verify accepted an expired token")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := NewService("test-secret", time.Hour).Verify("not-a-token"); err == nil {
		t.Error("Verify accepted a malformed token")
	}
}
