// Package router picks a compute backend for a training request from
// the subscription tier, detected modality and user preference, and
// estimates cost and wall-clock duration. It is the orchestration
// point sequencing detection, compatibility, quota and routing; the
// caller dispatches the resulting plan to the external job scheduler.
package router

import (
	"fmt"
	"math"

	"mlforge/compat"
	"mlforge/model"
	"mlforge/policy"
	"mlforge/result"
)

const (
	setupMinutes  = 3
	defaultEpochs = 50
	// Image estimates are capped at 50 epochs; training rarely runs
	// longer before early stopping.
	maxImageEpochs = 50
)

// PreferenceGPU is the explicit opt-in value for GPU training.
const PreferenceGPU = "gpu"

// Router combines the resource policy and compatibility validator.
// Stateless beyond the immutable tier table; safe for concurrent use.
type Router struct {
	policy    *policy.ResourcePolicy
	validator *compat.Validator
}

// New returns a Router over the given policy and validator.
func New(p *policy.ResourcePolicy, v *compat.Validator) *Router {
	return &Router{policy: p, validator: v}
}

// RouteTraining chooses the backend. The GPU backend is selected only
// when the tier is gold AND the user explicitly asked for it; an image
// dataset or a GPU-heavy task never auto-selects GPU, it only shapes
// the reason string.
func (r *Router) RouteTraining(tier model.SubscriptionTier, datasetType model.DatasetType, taskType string, sizeMB float64, preference string) model.RouteDecision {
	if tier == model.TierGold && preference == PreferenceGPU {
		gpu := r.policy.GPUSpec()
		return model.RouteDecision{
			Backend:              model.BackendGPUCloud,
			MachineType:          gpu.MachineType,
			Specs:                gpu.Specs,
			EstimatedCostPerHour: gpu.CostPerHour,
			MaxDurationHours:     gpu.MaxHours,
			GPUEnabled:           true,
			GPUType:              gpu.GPUType,
			Reason:               "GPU training enabled on the gold tier at the user's request",
		}
	}

	spec := r.policy.Spec(tier)
	reason := fmt.Sprintf("standard CPU configuration for the %s tier", tier)
	if datasetType == model.DatasetImage || compat.RequiresGPU(taskType) {
		if tier == model.TierGold {
			reason = "image or deep-learning workload routed to the CPU cluster; enable the GPU preference to train on gpu-cloud"
		} else {
			reason = "image or deep-learning workload routed to the CPU cluster; upgrade to the gold tier and enable the GPU preference to train on gpu-cloud"
		}
	}
	return model.RouteDecision{
		Backend:              model.BackendCPUCluster,
		MachineType:          spec.MachineType,
		Specs:                spec.Specs,
		EstimatedCostPerHour: spec.CostPerHour,
		MaxDurationHours:     spec.MaxHours,
		GPUEnabled:           false,
		Reason:               reason,
	}
}

// EstimateTrainingTime returns a wall-clock range in minutes. epochs
// of zero or below means the default of 50.
func (r *Router) EstimateTrainingTime(sizeMB float64, datasetType model.DatasetType, backend model.Backend, epochs int) model.TimeEstimate {
	if epochs <= 0 {
		epochs = defaultEpochs
	}
	setup := float64(setupMinutes)

	if datasetType == model.DatasetImage {
		perEpoch := sizeMB / 50 * 2
		if backend == model.BackendGPUCloud {
			perEpoch = sizeMB / 50 * 0.5
		}
		billed := epochs
		if billed > maxImageEpochs {
			billed = maxImageEpochs
		}
		total := perEpoch * float64(billed)
		return model.TimeEstimate{
			MinMinutes: int(math.Ceil(setup + 0.7*total)),
			MaxMinutes: int(math.Ceil(setup + 1.5*total)),
		}
	}

	total := sizeMB/10 + float64(epochs)/20
	return model.TimeEstimate{
		MinMinutes: int(math.Ceil(setup + 0.5*total)),
		MaxMinutes: int(math.Ceil(setup + 2*total)),
	}
}

// ValidateDatasetModelCompatibility delegates to the compatibility
// validator.
func (r *Router) ValidateDatasetModelCompatibility(datasetType model.DatasetType, taskType, algorithm string) result.Compatibility {
	return r.validator.ValidateCompatibility(datasetType, taskType, algorithm)
}

// ValidateDatasetSize delegates to the resource policy.
func (r *Router) ValidateDatasetSize(tier model.SubscriptionTier, sizeMB float64) result.SizeCheck {
	return r.policy.ValidateDatasetSize(tier, sizeMB)
}
