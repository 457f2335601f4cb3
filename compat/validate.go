package compat

import (
	"fmt"
	"strings"

	"mlforge/model"
	"mlforge/result"
)

// The two algorithm vocabularies are disjoint: an algorithm is either
// tabular-only or image-only, never both.
var tabularOnlyAlgorithms = []string{
	"linear_regression",
	"logistic_regression",
	"decision_tree",
	"random_forest",
	"extra_trees",
	"gradient_boosting",
	"adaboost",
	"xgboost",
	"lightgbm",
	"catboost",
	"svm",
	"knn",
	"naive_bayes",
	"kmeans",
	"dbscan",
	"hierarchical_clustering",
}

var imageOnlyAlgorithms = []string{
	"cnn",
	"resnet",
	"vgg",
	"efficientnet",
	"mobilenet",
	"vision_transformer",
	"yolo",
	"unet",
	"faster_rcnn",
	"mask_rcnn",
	"ssd",
}

var imageOnlyTasks = []string{
	"image_classification",
	"object_detection",
	"semantic_segmentation",
	"instance_segmentation",
}

// normalizeName lower-cases and strips separators so "RandomForest",
// "random_forest" and "random forest" compare equal.
func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

func inVocabulary(name string, vocabulary []string) bool {
	normalized := normalizeName(name)
	for _, entry := range vocabulary {
		if normalizeName(entry) == normalized {
			return true
		}
	}
	return false
}

// compatRule pairs a mismatch predicate with the failure it produces.
// Rules are checked in order; the first hit wins.
type compatRule struct {
	applies func(dt model.DatasetType, taskType, algorithm string) bool
	fail    func(dt model.DatasetType, taskType, algorithm string) result.Compatibility
}

var compatRules = []compatRule{
	{
		applies: func(dt model.DatasetType, _, algorithm string) bool {
			return dt == model.DatasetImage && inVocabulary(algorithm, tabularOnlyAlgorithms)
		},
		fail: func(_ model.DatasetType, _, algorithm string) result.Compatibility {
			return result.Compatibility{
				Valid: false,
				Error: fmt.Sprintf("%s requires tabular data, but an image dataset was detected", algorithm),
				Suggestions: []string{
					"choose an image model such as cnn or resnet",
					fmt.Sprintf("upload a tabular file (CSV, Excel, Parquet) to train %s", algorithm),
				},
			}
		},
	},
	{
		applies: func(dt model.DatasetType, _, algorithm string) bool {
			return dt == model.DatasetTabular && inVocabulary(algorithm, imageOnlyAlgorithms)
		},
		fail: func(_ model.DatasetType, _, algorithm string) result.Compatibility {
			return result.Compatibility{
				Valid: false,
				Error: fmt.Sprintf("%s requires image data, but a tabular dataset was detected", algorithm),
				Suggestions: []string{
					"choose a tabular algorithm such as random_forest or xgboost",
					fmt.Sprintf("upload an image archive to train %s", algorithm),
				},
			}
		},
	},
	{
		applies: func(dt model.DatasetType, taskType, _ string) bool {
			return dt == model.DatasetTabular && inVocabulary(taskType, imageOnlyTasks)
		},
		fail: func(_ model.DatasetType, taskType, _ string) result.Compatibility {
			return result.Compatibility{
				Valid: false,
				Error: fmt.Sprintf("task %q requires image data, but a tabular dataset was detected", taskType),
				Suggestions: []string{
					"choose a tabular task such as classification or regression",
					"upload an image archive for this task",
				},
			}
		},
	},
}

// Validator checks a requested algorithm and task type against the
// detected dataset modality. It holds no state; a single instance may
// serve arbitrary concurrency.
type Validator struct{}

// NewValidator returns a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCompatibility applies the mismatch rules in order. An unknown
// dataset type never hard-fails: it comes back valid with a warning and
// format hints, since detection saw nothing to contradict the request.
func (v *Validator) ValidateCompatibility(datasetType model.DatasetType, taskType, algorithm string) result.Compatibility {
	if datasetType == model.DatasetUnknown {
		return result.Compatibility{
			Valid:   true,
			Warning: "dataset format could not be determined from the filename, compatibility was not verified",
			Suggestions: []string{
				"name tabular files with a .csv, .tsv, .parquet, .json or .xlsx extension",
				"package image datasets as an archive whose name contains images, img, photos or pics",
			},
		}
	}
	for _, rule := range compatRules {
		if rule.applies(datasetType, taskType, algorithm) {
			return rule.fail(datasetType, taskType, algorithm)
		}
	}
	return result.Compatibility{Valid: true}
}
