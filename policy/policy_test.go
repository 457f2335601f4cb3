package policy_test

import (
	"strings"
	"testing"

	"mlforge/config"
	"mlforge/model"
	"mlforge/policy"
)

func newPolicy(t *testing.T) *policy.ResourcePolicy {
	t.Helper()
	p, err := policy.New(config.DefaultTierTable())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewRejectsMalformedTables(t *testing.T) {
	t.Run("missing tier", func(t *testing.T) {
		table := config.DefaultTierTable()
		delete(table.Tiers, model.TierGold)
		if _, err := policy.New(table); err == nil {
			t.Error("expected an error for a missing tier")
		}
	})

	t.Run("capability must not decrease", func(t *testing.T) {
		table := config.DefaultTierTable()
		spec := table.Tiers[model.TierSilver]
		spec.MaxDatasetMB = 10
		table.Tiers[model.TierSilver] = spec
		if _, err := policy.New(table); err == nil {
			t.Error("expected an error for a non-monotonic table")
		}
	})

	t.Run("non-positive cost", func(t *testing.T) {
		table := config.DefaultTierTable()
		spec := table.Tiers[model.TierFree]
		spec.CostPerHour = 0
		table.Tiers[model.TierFree] = spec
		if _, err := policy.New(table); err == nil {
			t.Error("expected an error for a zero cost")
		}
	})
}

func TestValidateDatasetSize(t *testing.T) {
	p := newPolicy(t)
	freeLimit := config.DefaultTierTable().Tiers[model.TierFree].MaxDatasetMB

	t.Run("within quota", func(t *testing.T) {
		got := p.ValidateDatasetSize(model.TierFree, float64(freeLimit))
		if !got.Valid {
			t.Errorf("size at the limit should be valid: %s", got.Message)
		}
		if got.MaxAllowedMB != freeLimit {
			t.Errorf("MaxAllowedMB = %d, want %d", got.MaxAllowedMB, freeLimit)
		}
	})

	t.Run("one over quota", func(t *testing.T) {
		got := p.ValidateDatasetSize(model.TierFree, float64(freeLimit+1))
		if got.Valid {
			t.Fatal("expected invalid")
		}
		if got.MaxAllowedMB != freeLimit {
			t.Errorf("MaxAllowedMB = %d, want %d", got.MaxAllowedMB, freeLimit)
		}
		if got.Message == "" {
			t.Error("expected a message")
		}
		if len(got.Suggestions) != 2 || !strings.Contains(got.Suggestions[0], "silver") {
			t.Errorf("expected upgrade-then-reduce suggestions, got %v", got.Suggestions)
		}
	})

	t.Run("no upgrade above gold", func(t *testing.T) {
		got := p.ValidateDatasetSize(model.TierGold, 99999)
		if got.Valid {
			t.Fatal("expected invalid")
		}
		for _, s := range got.Suggestions {
			if strings.Contains(s, "upgrade") {
				t.Errorf("gold tier should not be told to upgrade: %q", s)
			}
		}
	})

	t.Run("unknown tier gets the free quota", func(t *testing.T) {
		got := p.ValidateDatasetSize("platinum", float64(freeLimit+1))
		if got.Valid {
			t.Fatal("expected invalid")
		}
		if got.MaxAllowedMB != freeLimit {
			t.Errorf("MaxAllowedMB = %d, want free limit %d", got.MaxAllowedMB, freeLimit)
		}
	})
}
