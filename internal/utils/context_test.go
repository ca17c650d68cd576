package utils

import (
	"context"
	"testing"
)

func TestGetUserIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		t.Fatal("expected user ID to be present")
	}
	if userID != 42 {
		t.Errorf("expected 42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64")
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}

func TestGetUserEmailFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserEmailCtxKey, "a@x.com")

	email, ok := GetUserEmailFromContext(ctx)
	if !ok {
		t.Fatal("expected email to be present")
	}
	if email != "a@x.com" {
		t.Errorf("expected a@x.com, got %s", email)
	}
}

func TestGetUserEmailFromContext_Missing(t *testing.T) {
	if _, ok := GetUserEmailFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}
