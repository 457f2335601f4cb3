package compat

import "strings"

// Task types that benefit from GPU acceleration. Matching is by
// substring over the lower-cased task type, so "cnn_transfer" and
// "bert-finetune" both hit.
var gpuTaskVocabulary = []string{
	"cnn",
	"deep_learning",
	"neural_network",
	"image_classification",
	"object_detection",
	"semantic_segmentation",
	"instance_segmentation",
	"resnet",
	"vgg",
	"efficientnet",
	"mobilenet",
	"transformer",
	"bert",
	"gpt",
	"yolo",
	"unet",
	"lstm",
	"rnn",
	"gan",
}

// RequiresGPU reports whether the task type names a GPU-heavy workload.
func RequiresGPU(taskType string) bool {
	lower := strings.ToLower(taskType)
	for _, keyword := range gpuTaskVocabulary {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
