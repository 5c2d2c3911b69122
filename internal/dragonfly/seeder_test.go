package dragonfly

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vedslabs/seedctl/internal/refdata"
)

// stubSetter records every SET and optionally fails on a matching key.
type stubSetter struct {
	values map[string]interface{}
	failOn string
}

func (s *stubSetter) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if s.failOn != "" && strings.Contains(key, s.failOn) {
		cmd.SetErr(errors.New("connection refused"))
		return cmd
	}
	if s.values == nil {
		s.values = map[string]interface{}{}
	}
	s.values[key] = value
	return cmd
}

func TestSeedConstraints(t *testing.T) {
	kv := &stubSetter{}
	n, err := NewSeeder(kv, zap.NewNop()).SeedConstraints(context.Background())
	require.NoError(t, err)

	// One min_wage per country, one max_hours per region, one carbon budget.
	want := len(refdata.Countries) + len(refdata.MinMaxHoursByRegion()) + 1
	assert.Equal(t, want, n)
	assert.Len(t, kv.values, want)

	for _, c := range refdata.Countries {
		assert.Equal(t, c.MinWageCents, kv.values["constraint:min_wage:"+c.Code])
	}

	// EU max_hours {40,48,38,35,48,48} yields the France floor of 35.
	assert.Equal(t, 35, kv.values["constraint:max_hours:EU"])
	assert.Equal(t, 44, kv.values["constraint:max_hours:APAC"])
	assert.Equal(t, 48, kv.values["constraint:max_hours:MENA"])

	assert.Equal(t, refdata.DefaultCarbonBudget, kv.values["constraint:carbon_budget:default"])
}

func TestSeedConstraintsOverwritesExistingKeys(t *testing.T) {
	kv := &stubSetter{values: map[string]interface{}{
		"constraint:min_wage:NL": 1,
	}}
	_, err := NewSeeder(kv, zap.NewNop()).SeedConstraints(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1395, kv.values["constraint:min_wage:NL"], "existing keys are overwritten")
}

func TestSeedConstraintsPropagatesSetError(t *testing.T) {
	kv := &stubSetter{failOn: "carbon_budget"}
	_, err := NewSeeder(kv, zap.NewNop()).SeedConstraints(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constraint:carbon_budget:default")
}

func TestNewClient(t *testing.T) {
	t.Run("valid url with password override", func(t *testing.T) {
		c, err := NewClient("redis://localhost:6379", "hunter2")
		require.NoError(t, err)
		defer c.Close()
		assert.Equal(t, "localhost:6379", c.Options().Addr)
		assert.Equal(t, "hunter2", c.Options().Password)
	})

	t.Run("url password kept when no override", func(t *testing.T) {
		c, err := NewClient("redis://:frompass@localhost:6380", "")
		require.NoError(t, err)
		defer c.Close()
		assert.Equal(t, "frompass", c.Options().Password)
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := NewClient("http://not-redis", "")
		assert.Error(t, err)
	})
}
