package router

import (
	"mlforge/compat"
	"mlforge/logutils"
	"mlforge/model"
	"mlforge/result"
)

// TrainingRequest carries everything the engine needs to plan a job.
// The caller has already resolved the dataset reference; the engine
// never fetches data itself.
type TrainingRequest struct {
	Tier       model.SubscriptionTier `json:"tier"`
	Filename   string                 `json:"filename"`
	MIMEType   string                 `json:"mimeType,omitempty"`
	TaskType   string                 `json:"taskType"`
	Algorithm  string                 `json:"algorithm"`
	SizeMB     float64                `json:"sizeMB"`
	Preference string                 `json:"preference,omitempty"`
	Epochs     int                    `json:"epochs,omitempty"`
}

// TrainingPlan is the full decision handed to the external job
// scheduler, which provisions the named machine type and runs the job.
// The engine has no visibility into execution after this point.
type TrainingPlan struct {
	DatasetType   model.DatasetType    `json:"datasetType"`
	Compatibility result.Compatibility `json:"compatibility"`
	SizeCheck     result.SizeCheck     `json:"sizeCheck"`
	Decision      model.RouteDecision  `json:"decision"`
	Estimate      model.TimeEstimate   `json:"estimate"`
}

// Plan sequences the decision pipeline: detect modality, validate
// compatibility, validate size, route, estimate. The first failing
// stage aborts with its structured failure; nothing is dispatched here.
func (r *Router) Plan(req TrainingRequest) (*TrainingPlan, *result.Failure) {
	datasetType := compat.DetectDatasetType(req.Filename, req.MIMEType)

	compatibility := r.validator.ValidateCompatibility(datasetType, req.TaskType, req.Algorithm)
	if !compatibility.Valid {
		return nil, result.Incompatible(compatibility.Error, compatibility.Suggestions...)
	}
	if compatibility.Warning != "" {
		logutils.Log.WithFields(logutils.Fields{"filename": req.Filename}).
			Warn(compatibility.Warning)
	}

	sizeCheck := r.policy.ValidateDatasetSize(req.Tier, req.SizeMB)
	if !sizeCheck.Valid {
		return nil, result.OverQuota(sizeCheck.Message, sizeCheck.Suggestions...)
	}

	decision := r.RouteTraining(req.Tier, datasetType, req.TaskType, req.SizeMB, req.Preference)
	estimate := r.EstimateTrainingTime(req.SizeMB, datasetType, decision.Backend, req.Epochs)

	logutils.Log.WithFields(logutils.Fields{
		"tier":    req.Tier,
		"backend": decision.Backend,
		"task":    req.TaskType,
		"sizeMB":  req.SizeMB,
	}).Info("training plan created")

	return &TrainingPlan{
		DatasetType:   datasetType,
		Compatibility: compatibility,
		SizeCheck:     sizeCheck,
		Decision:      decision,
		Estimate:      estimate,
	}, nil
}
