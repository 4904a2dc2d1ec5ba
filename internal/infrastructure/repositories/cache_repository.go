package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// Cache key builders
func identityKey(userID string) string   { return "user:" + userID }
func companyKey(companyID string) string { return "company:" + companyID }
func companySlugKey(slug string) string  { return "company:slug:" + slug }

// IdentityCacheImpl implements domain.IdentityCache using Redis. Entries
// are a redundant mirror of Postgres rows; concurrent misses that both
// populate are tolerated as last-write-wins.
type IdentityCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdentityCache creates a new identity cache
func NewIdentityCache(client *redis.Client, ttl time.Duration) domain.IdentityCache {
	return &IdentityCacheImpl{client: client, ttl: ttl}
}

// Get implements domain.IdentityCache
func (c *IdentityCacheImpl) Get(ctx context.Context, userID string) (*domain.AuthIdentity, error) {
	data, err := c.client.Get(ctx, identityKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	var identity domain.AuthIdentity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached identity: %w", err)
	}
	return &identity, nil
}

// Set implements domain.IdentityCache
func (c *IdentityCacheImpl) Set(ctx context.Context, identity *domain.AuthIdentity) error {
	if identity == nil || identity.ID() == "" {
		return fmt.Errorf("cannot cache empty identity")
	}
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}
	return c.client.Set(ctx, identityKey(identity.ID()), data, c.ttl).Err()
}

// Delete implements domain.IdentityCache
func (c *IdentityCacheImpl) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, identityKey(userID)).Err()
}

// CompanyCacheImpl implements domain.CompanyCache using Redis. Companies
// are mirrored under both the id key and the slug key so slug-addressed
// reads skip Postgres too.
type CompanyCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCompanyCache creates a new company cache
func NewCompanyCache(client *redis.Client, ttl time.Duration) domain.CompanyCache {
	return &CompanyCacheImpl{client: client, ttl: ttl}
}

// Get implements domain.CompanyCache
func (c *CompanyCacheImpl) Get(ctx context.Context, companyID string) (*domain.Company, error) {
	return c.get(ctx, companyKey(companyID))
}

// GetBySlug implements domain.CompanyCache
func (c *CompanyCacheImpl) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	return c.get(ctx, companySlugKey(slug))
}

func (c *CompanyCacheImpl) get(ctx context.Context, key string) (*domain.Company, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	var company domain.Company
	if err := json.Unmarshal([]byte(data), &company); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached company: %w", err)
	}
	return &company, nil
}

// Set implements domain.CompanyCache
func (c *CompanyCacheImpl) Set(ctx context.Context, company *domain.Company) error {
	data, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("failed to marshal company: %w", err)
	}
	if err := c.client.Set(ctx, companyKey(company.ID), data, c.ttl).Err(); err != nil {
		return err
	}
	return c.client.Set(ctx, companySlugKey(company.Slug), data, c.ttl).Err()
}

// Invalidate implements domain.CompanyCache. Safe to call for keys that
// were never populated.
func (c *CompanyCacheImpl) Invalidate(ctx context.Context, companyID, slug string) error {
	keys := []string{companyKey(companyID)}
	if slug != "" {
		keys = append(keys, companySlugKey(slug))
	}
	return c.client.Del(ctx, keys...).Err()
}
