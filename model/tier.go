package model

import "fmt"

// SubscriptionTier gates compute quotas and available backends.
// Tiers are totally ordered: free < silver < gold.
type SubscriptionTier string

const (
	TierFree   SubscriptionTier = "free"
	TierSilver SubscriptionTier = "silver"
	TierGold   SubscriptionTier = "gold"
)

// TierOrder lists the tiers from lowest to highest capability.
var TierOrder = []SubscriptionTier{TierFree, TierSilver, TierGold}

// Rank returns the position of the tier in the tier order, or -1 for
// unknown tiers.
func (t SubscriptionTier) Rank() int {
	for i, tier := range TierOrder {
		if t == tier {
			return i
		}
	}
	return -1
}

// Valid reports whether t is one of the known tiers.
func (t SubscriptionTier) Valid() bool { return t.Rank() >= 0 }

// Less reports whether t is strictly below other in the tier order.
func (t SubscriptionTier) Less(other SubscriptionTier) bool {
	return t.Rank() < other.Rank()
}

// Next returns the tier one step up. ok is false for gold and for
// unknown tiers.
func (t SubscriptionTier) Next() (next SubscriptionTier, ok bool) {
	r := t.Rank()
	if r < 0 || r+1 >= len(TierOrder) {
		return "", false
	}
	return TierOrder[r+1], true
}

// Backend is the compute environment a training job runs on.
type Backend string

const (
	BackendCPUCluster Backend = "cpu-cluster"
	BackendGPUCloud   Backend = "gpu-cloud"
)

// DatasetType is the detected data modality, derived from filename and
// MIME type only.
type DatasetType string

const (
	DatasetTabular DatasetType = "tabular"
	DatasetImage   DatasetType = "image"
	DatasetUnknown DatasetType = "unknown"
)

// TierSpec is the machine and quota configuration for one tier.
type TierSpec struct {
	MachineType  string  `yaml:"machineType" json:"machineType"`
	Specs        string  `yaml:"specs" json:"specs"`
	CostPerHour  float64 `yaml:"costPerHour" json:"costPerHour"`
	MaxHours     int     `yaml:"maxHours" json:"maxHours"`
	MaxDatasetMB int     `yaml:"maxDatasetMB" json:"maxDatasetMB"`
}

// GPUSpec is the machine configuration used when GPU training is
// requested on the gold tier.
type GPUSpec struct {
	MachineType string  `yaml:"machineType" json:"machineType"`
	Specs       string  `yaml:"specs" json:"specs"`
	CostPerHour float64 `yaml:"costPerHour" json:"costPerHour"`
	MaxHours    int     `yaml:"maxHours" json:"maxHours"`
	GPUType     string  `yaml:"gpuType" json:"gpuType"`
}

// TierTable is the static quota table. It is initialized once and never
// mutated at runtime, so it may be shared across goroutines freely.
type TierTable struct {
	Tiers map[SubscriptionTier]TierSpec `yaml:"tiers"`
	GPU   GPUSpec                       `yaml:"gpu"`
}

// Validate checks the table for configuration bugs: missing tiers,
// non-positive limits, or capability decreasing across the tier order.
func (tt TierTable) Validate() error {
	for _, tier := range TierOrder {
		spec, ok := tt.Tiers[tier]
		if !ok {
			return fmt.Errorf("tier table: missing tier %q", tier)
		}
		if spec.MachineType == "" {
			return fmt.Errorf("tier table: tier %q has no machine type", tier)
		}
		if spec.CostPerHour <= 0 {
			return fmt.Errorf("tier table: tier %q has non-positive cost per hour", tier)
		}
		if spec.MaxHours <= 0 {
			return fmt.Errorf("tier table: tier %q has non-positive max hours", tier)
		}
		if spec.MaxDatasetMB <= 0 {
			return fmt.Errorf("tier table: tier %q has non-positive dataset limit", tier)
		}
	}
	for i := 1; i < len(TierOrder); i++ {
		lower, higher := tt.Tiers[TierOrder[i-1]], tt.Tiers[TierOrder[i]]
		if higher.MaxDatasetMB < lower.MaxDatasetMB || higher.MaxHours < lower.MaxHours {
			return fmt.Errorf("tier table: tier %q is less capable than %q", TierOrder[i], TierOrder[i-1])
		}
	}
	if tt.GPU.MachineType == "" || tt.GPU.GPUType == "" {
		return fmt.Errorf("tier table: incomplete GPU configuration")
	}
	if tt.GPU.CostPerHour <= 0 || tt.GPU.MaxHours <= 0 {
		return fmt.Errorf("tier table: GPU configuration has non-positive limits")
	}
	return nil
}

// RouteDecision is the engine's answer to a routing request. It is
// produced once per request; ownership transfers entirely to the caller.
type RouteDecision struct {
	Backend              Backend `json:"backend"`
	MachineType          string  `json:"machineType"`
	Specs                string  `json:"specs"`
	EstimatedCostPerHour float64 `json:"estimatedCostPerHour"`
	MaxDurationHours     int     `json:"maxDurationHours"`
	GPUEnabled           bool    `json:"gpuEnabled"`
	GPUType              string  `json:"gpuType,omitempty"`
	Reason               string  `json:"reason"`
}

// TimeEstimate is a wall-clock range for a training run, in minutes.
type TimeEstimate struct {
	MinMinutes int `json:"minMinutes"`
	MaxMinutes int `json:"maxMinutes"`
}
