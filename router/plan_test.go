package router_test

import (
	"testing"

	"mlforge/model"
	"mlforge/result"
	"mlforge/router"
)

func TestPlan(t *testing.T) {
	r := newRouter(t)

	t.Run("full pipeline on an image archive", func(t *testing.T) {
		plan, failure := r.Plan(router.TrainingRequest{
			Tier:       model.TierGold,
			Filename:   "cat_photos.zip",
			TaskType:   "image_classification",
			Algorithm:  "resnet",
			SizeMB:     500,
			Preference: router.PreferenceGPU,
		})
		if failure != nil {
			t.Fatal(failure)
		}
		if plan.DatasetType != model.DatasetImage {
			t.Errorf("DatasetType = %q, want image", plan.DatasetType)
		}
		if plan.Decision.Backend != model.BackendGPUCloud {
			t.Errorf("Backend = %q, want gpu-cloud", plan.Decision.Backend)
		}
		// perEpoch = 500/50*0.5 = 5; total = 250; [ceil(178), ceil(378)]
		want := model.TimeEstimate{MinMinutes: 178, MaxMinutes: 378}
		if plan.Estimate != want {
			t.Errorf("Estimate = %+v, want %+v", plan.Estimate, want)
		}
	})

	t.Run("stops on incompatibility before the quota check", func(t *testing.T) {
		plan, failure := r.Plan(router.TrainingRequest{
			Tier:      model.TierFree,
			Filename:  "cat_photos.zip",
			TaskType:  "image_classification",
			Algorithm: "RandomForest",
			// over the free quota too, but compatibility fails first
			SizeMB: 5000,
		})
		if plan != nil {
			t.Fatal("expected no plan")
		}
		if failure == nil || failure.Category != result.CategoryCompatibility {
			t.Fatalf("failure = %+v, want a compatibility failure", failure)
		}
	})

	t.Run("stops on the quota", func(t *testing.T) {
		plan, failure := r.Plan(router.TrainingRequest{
			Tier:      model.TierFree,
			Filename:  "data.csv",
			TaskType:  "classification",
			Algorithm: "random_forest",
			SizeMB:    200,
		})
		if plan != nil {
			t.Fatal("expected no plan")
		}
		if failure == nil || failure.Category != result.CategorySizeQuota {
			t.Fatalf("failure = %+v, want a size-quota failure", failure)
		}
	})

	t.Run("unknown modality plans with a warning", func(t *testing.T) {
		plan, failure := r.Plan(router.TrainingRequest{
			Tier:      model.TierSilver,
			Filename:  "blob.bin",
			TaskType:  "classification",
			Algorithm: "xgboost",
			SizeMB:    100,
		})
		if failure != nil {
			t.Fatal(failure)
		}
		if plan.DatasetType != model.DatasetUnknown {
			t.Errorf("DatasetType = %q, want unknown", plan.DatasetType)
		}
		if plan.Compatibility.Warning == "" {
			t.Error("expected the compatibility warning to be carried into the plan")
		}
		if plan.Decision.Backend != model.BackendCPUCluster {
			t.Errorf("Backend = %q, want cpu-cluster", plan.Decision.Backend)
		}
	})
}
