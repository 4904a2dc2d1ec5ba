package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

func TestIdentityCacheImpl_RoundTrip(t *testing.T) {
	client, _ := newTestRedis(t)
	cache := NewIdentityCache(client, 10*time.Minute)
	ctx := context.Background()

	identity := &domain.AuthIdentity{
		User:     &domain.User{ID: "user-1", Email: "owner@example.com", IsVerified: true},
		Employee: &domain.Employee{ID: "emp-1", UserID: "user-1", Role: domain.RoleOwner, Status: domain.StatusActive, CompanyID: "company-1"},
	}
	if err := cache.Set(ctx, identity); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.User.Email != "owner@example.com" {
		t.Errorf("unexpected user %+v", got.User)
	}
	if got.Employee.Role != domain.RoleOwner {
		t.Errorf("unexpected employee %+v", got.Employee)
	}
}

func TestIdentityCacheImpl_PhoneOnlyIdentityKeyedByEmployeeID(t *testing.T) {
	client, _ := newTestRedis(t)
	cache := NewIdentityCache(client, 10*time.Minute)
	ctx := context.Background()

	identity := &domain.AuthIdentity{
		Employee: &domain.Employee{ID: "emp-9", Phone: "+919876543210", Role: domain.RoleEmployee, Status: domain.StatusActive},
	}
	if err := cache.Set(ctx, identity); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := cache.Get(ctx, "emp-9")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.User != nil {
		t.Error("phone-only identity must have no user")
	}
	if got.Employee.ID != "emp-9" {
		t.Errorf("unexpected employee %+v", got.Employee)
	}
}

func TestIdentityCacheImpl_MissAndDelete(t *testing.T) {
	client, _ := newTestRedis(t)
	cache := NewIdentityCache(client, 10*time.Minute)
	ctx := context.Background()

	if _, err := cache.Get(ctx, "nobody"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
	// Deleting a missing key is a no-op
	if err := cache.Delete(ctx, "nobody"); err != nil {
		t.Fatalf("delete of missing key failed: %v", err)
	}

	if err := cache.Set(ctx, &domain.AuthIdentity{User: &domain.User{ID: "user-1"}}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Delete(ctx, "user-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := cache.Get(ctx, "user-1"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after delete, got %v", err)
	}
}

func TestIdentityCacheImpl_RejectsEmptyIdentity(t *testing.T) {
	client, _ := newTestRedis(t)
	cache := NewIdentityCache(client, 10*time.Minute)

	if err := cache.Set(context.Background(), &domain.AuthIdentity{}); err == nil {
		t.Fatal("expected error for identity without subject")
	}
}

func TestIdentityCacheImpl_EntriesExpire(t *testing.T) {
	client, mr := newTestRedis(t)
	cache := NewIdentityCache(client, 10*time.Minute)
	ctx := context.Background()

	if err := cache.Set(ctx, &domain.AuthIdentity{User: &domain.User{ID: "user-1"}}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	mr.FastForward(11 * time.Minute)

	if _, err := cache.Get(ctx, "user-1"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after TTL, got %v", err)
	}
}

func TestCompanyCacheImpl_SetMirrorsBothKeys(t *testing.T) {
	client, _ := newTestRedis(t)
	cache := NewCompanyCache(client, 5*time.Minute)
	ctx := context.Background()

	company := &domain.Company{ID: "company-1", Name: "Acme", Slug: "acme", OwnerID: "user-1"}
	if err := cache.Set(ctx, company); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	byID, err := cache.Get(ctx, "company-1")
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	bySlug, err := cache.GetBySlug(ctx, "acme")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if byID.Name != "Acme" || bySlug.Name != "Acme" {
		t.Errorf("both keys must mirror the company: %+v %+v", byID, bySlug)
	}
}

func TestCompanyCacheImpl_Invalidate(t *testing.T) {
	client, _ := newTestRedis(t)
	cache := NewCompanyCache(client, 5*time.Minute)
	ctx := context.Background()

	company := &domain.Company{ID: "company-1", Slug: "acme"}
	if err := cache.Set(ctx, company); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Invalidate(ctx, "company-1", "acme"); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	if _, err := cache.Get(ctx, "company-1"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss for id key, got %v", err)
	}
	if _, err := cache.GetBySlug(ctx, "acme"); !errors.Is(err, domain.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss for slug key, got %v", err)
	}

	// Invalidating keys that were never populated is a no-op
	if err := cache.Invalidate(ctx, "company-9", ""); err != nil {
		t.Fatalf("invalidate of missing keys failed: %v", err)
	}
}
