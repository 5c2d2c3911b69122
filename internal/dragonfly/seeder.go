// Package dragonfly writes derived constraint scalars into a
// Redis-protocol key-value store (Dragonfly in the dev stack). Keys follow
// the constraint:<kind>:<scope> convention and are plain text so downstream
// compliance checks can read them without a schema.
package dragonfly

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vedslabs/seedctl/internal/refdata"
)

// Setter is the slice of the redis client the seeder needs. *redis.Client
// satisfies it; tests substitute a recording stub.
type Setter interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// NewClient parses a redis:// URL and applies the password override. The
// returned client dials lazily; connection failures surface on first SET.
func NewClient(url, password string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse dragonfly url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	return redis.NewClient(opts), nil
}

// Seeder writes the constraint cache. Existing keys with the same names are
// overwritten unconditionally; there is no read-back verification.
type Seeder struct {
	kv  Setter
	log *zap.Logger
}

// NewSeeder wraps a key-value client.
func NewSeeder(kv Setter, logger *zap.Logger) *Seeder {
	return &Seeder{kv: kv, log: logger.Named("dragonfly")}
}

// SeedConstraints writes one min_wage key per country, one max_hours key per
// region holding the region's strictest weekly-hours limit, and the default
// carbon budget. Returns the number of keys written.
func (s *Seeder) SeedConstraints(ctx context.Context) (int, error) {
	count := 0

	wages := refdata.MinWageByCountry()
	for code, cents := range wages {
		key := fmt.Sprintf("constraint:min_wage:%s", code)
		if err := s.kv.Set(ctx, key, cents, 0).Err(); err != nil {
			return count, fmt.Errorf("set %s: %w", key, err)
		}
		count++
	}
	s.log.Info("Set wage constraints", zap.Int("count", len(wages)))

	hours := refdata.MinMaxHoursByRegion()
	for region, h := range hours {
		key := fmt.Sprintf("constraint:max_hours:%s", region)
		if err := s.kv.Set(ctx, key, h, 0).Err(); err != nil {
			return count, fmt.Errorf("set %s: %w", key, err)
		}
		count++
	}
	s.log.Info("Set hour constraints", zap.Int("count", len(hours)))

	key := "constraint:carbon_budget:default"
	if err := s.kv.Set(ctx, key, refdata.DefaultCarbonBudget, 0).Err(); err != nil {
		return count, fmt.Errorf("set %s: %w", key, err)
	}
	count++

	return count, nil
}
