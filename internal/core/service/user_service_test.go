package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cloud-panel/admin-api/internal/core/domain"
	"github.com/cloud-panel/admin-api/internal/core/ports"
)

func newUserService(repo *stubUserRepo, cache ports.DirectoryCache) *UserService {
	return NewUserService(repo, NewBcryptHasher(4), cache, zerolog.Nop())
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
		Role:     domain.RoleEditor,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned record must not carry the password hash")
	}

	stored, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secret1" {
		t.Fatalf("stored password must be hashed, got %q", stored.PasswordHash)
	}
	if !NewBcryptHasher(4).Verify("secret1", stored.PasswordHash) {
		t.Fatalf("stored hash does not match submitted password")
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := newUserService(newStubUserRepo(), nil)

	cases := map[string]ports.CreateUserInput{
		"missing name":     {Email: "a@x.com", Password: "p", Role: domain.RoleGuest},
		"missing email":    {Name: "A", Password: "p", Role: domain.RoleGuest},
		"missing password": {Name: "A", Email: "a@x.com", Role: domain.RoleGuest},
		"missing role":     {Name: "A", Email: "a@x.com", Password: "p"},
		"unknown role":     {Name: "A", Email: "a@x.com", Password: "p", Role: "superuser"},
	}
	for name, input := range cases {
		if _, err := svc.Create(context.Background(), input); err != domain.ErrValidation {
			t.Fatalf("%s: expected ErrValidation, got %v", name, err)
		}
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc := newUserService(newStubUserRepo(), nil)

	input := ports.CreateUserInput{Name: "Ann", Email: "ann@x.com", Password: "secret1", Role: domain.RoleEditor}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserService_List_StripsHashesAndCaches(t *testing.T) {
	repo := newStubUserRepo()
	cache := &stubDirectoryCache{}
	svc := newUserService(repo, cache)

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1", Role: domain.RoleEditor,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Fatalf("list must not expose password hashes")
		}
	}
	if cache.cached == nil {
		t.Fatalf("expected listing to be cached")
	}

	// Second call is served from cache.
	again, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("expected cached listing of 1 user, got %d", len(again))
	}
}

func TestUserService_MutationsInvalidateCache(t *testing.T) {
	repo := newStubUserRepo()
	cache := &stubDirectoryCache{}
	svc := newUserService(repo, cache)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1", Role: domain.RoleEditor,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("create must invalidate the cache, got %d invalidations", cache.invalidated)
	}

	if _, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Name: "Anna"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if cache.invalidated != 3 {
		t.Fatalf("expected 3 invalidations, got %d", cache.invalidated)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newUserService(newStubUserRepo(), nil)

	if _, err := svc.Update(context.Background(), "missing", ports.UpdateUserInput{Name: "X"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_RefreshesTimestamp(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1", Role: domain.RoleEditor,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Role: domain.RoleGuest})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleGuest {
		t.Fatalf("expected role guest, got %s", updated.Role)
	}
	if !updated.UpdatedAt.After(user.UpdatedAt) {
		t.Fatalf("expected updated_at to be refreshed")
	}
}

func TestUserService_Delete_Twice(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1", Role: domain.RoleEditor,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), user.ID); err != domain.ErrUserNotFound {
		t.Fatalf("second delete: expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	repo := newStubUserRepo()
	hasher := NewBcryptHasher(4)
	svc := NewUserService(repo, hasher, nil, zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Name: "Ann", Email: "ann@x.com", Password: "oldpass", Role: domain.RoleEditor,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Wrong old password: rejected, stored hash untouched.
	if err := svc.ChangePassword(context.Background(), user.ID, "wrong", "newpass"); err != domain.ErrPasswordMismatch {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), user.ID)
	if !hasher.Verify("oldpass", stored.PasswordHash) {
		t.Fatalf("stored hash must be unchanged after a rejected attempt")
	}

	// Correct old password: hash replaced.
	if err := svc.ChangePassword(context.Background(), user.ID, "oldpass", "newpass"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	stored, _ = repo.FindByID(context.Background(), user.ID)
	if !hasher.Verify("newpass", stored.PasswordHash) {
		t.Fatalf("stored hash does not match the new password")
	}
	if hasher.Verify("oldpass", stored.PasswordHash) {
		t.Fatalf("old password must no longer verify")
	}
}

func TestUserService_ChangePassword_EmptyInput(t *testing.T) {
	svc := newUserService(newStubUserRepo(), nil)

	if err := svc.ChangePassword(context.Background(), "id-1", "", "new"); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), "id-1", "old", ""); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_EnsureAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo, nil)

	if err := svc.EnsureAdmin(context.Background(), "admin@example.com", "admin123"); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	admin, err := repo.FindByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != domain.RoleAdministrator {
		t.Fatalf("expected administrator role, got %s", admin.Role)
	}

	// A populated directory is left alone.
	if err := svc.EnsureAdmin(context.Background(), "other@example.com", "pass"); err != nil {
		t.Fatalf("second bootstrap errored: %v", err)
	}
	if _, err := repo.FindByEmail(context.Background(), "other@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("bootstrap must not seed into a populated directory")
	}
}
