// Package policy enforces the per-tier resource quotas: dataset size
// limits and the machine/cost configuration used for routing.
package policy

import (
	"fmt"

	"mlforge/logutils"
	"mlforge/model"
	"mlforge/result"
)

// ResourcePolicy wraps an immutable tier table. It holds no mutable
// state after construction and may be shared across goroutines.
type ResourcePolicy struct {
	table model.TierTable
}

// New validates the table and returns a policy over it. A malformed
// table is a configuration bug and comes back as a hard error.
func New(table model.TierTable) (*ResourcePolicy, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("resource policy: %w", err)
	}
	return &ResourcePolicy{table: table}, nil
}

// Spec returns the machine and quota configuration for a tier.
// Unknown tiers get the free quota.
func (p *ResourcePolicy) Spec(tier model.SubscriptionTier) model.TierSpec {
	if !tier.Valid() {
		logutils.Log.WithFields(logutils.Fields{"tier": tier}).
			Warn("unknown subscription tier, applying free quota")
		tier = model.TierFree
	}
	return p.table.Tiers[tier]
}

// GPUSpec returns the gold-only GPU machine configuration.
func (p *ResourcePolicy) GPUSpec() model.GPUSpec {
	return p.table.GPU
}

// ValidateDatasetSize checks sizeMB against the tier's quota. The
// over-quota case is a returned result, not an error: the caller
// resolves it by upgrading the tier or reducing the dataset.
func (p *ResourcePolicy) ValidateDatasetSize(tier model.SubscriptionTier, sizeMB float64) result.SizeCheck {
	spec := p.Spec(tier)
	if sizeMB <= float64(spec.MaxDatasetMB) {
		return result.SizeCheck{Valid: true, MaxAllowedMB: spec.MaxDatasetMB}
	}

	suggestions := []string{
		fmt.Sprintf("reduce the dataset below %d MB", spec.MaxDatasetMB),
	}
	if next, ok := tier.Next(); ok {
		suggestions = append([]string{
			fmt.Sprintf("upgrade to the %s tier for a %d MB limit", next, p.table.Tiers[next].MaxDatasetMB),
		}, suggestions...)
	}
	return result.SizeCheck{
		Valid:        false,
		MaxAllowedMB: spec.MaxDatasetMB,
		Message: fmt.Sprintf("dataset size %.1f MB exceeds the %s tier limit of %d MB",
			sizeMB, tier, spec.MaxDatasetMB),
		Suggestions: suggestions,
	}
}
