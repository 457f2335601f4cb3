package compat_test

import (
	"testing"

	"mlforge/compat"
	"mlforge/model"
)

func TestDetectDatasetType(t *testing.T) {
	for name, testcase := range map[string]struct {
		filename string
		mimeType string
		want     model.DatasetType
	}{
		"csv":              {"data.csv", "", model.DatasetTabular},
		"uppercase ext":    {"EXPORT.CSV", "", model.DatasetTabular},
		"parquet":          {"events.parquet", "", model.DatasetTabular},
		"tsv":              {"rows.tsv", "", model.DatasetTabular},
		"jpeg":             {"photo.jpg", "", model.DatasetImage},
		"png uppercase":    {"diagram.PNG", "", model.DatasetImage},
		"image archive":    {"cat_photos.zip", "", model.DatasetImage},
		"images keyword":   {"training_images.tar.gz", "", model.DatasetImage},
		"plain archive":    {"dataset.zip", "", model.DatasetUnknown},
		"archive via mime": {"dataset.zip", "image/png", model.DatasetImage},
		"archive csv mime": {"bundle.tar", "text/csv", model.DatasetTabular},
		"unknown ext":      {"weights.bin", "", model.DatasetUnknown},
		"unknown ext mime": {"export.dat", "application/vnd.ms-excel", model.DatasetTabular},
		"unhelpful mime":   {"blob.bin", "application/octet-stream", model.DatasetUnknown},
	} {
		t.Run(name, func(t *testing.T) {
			got := compat.DetectDatasetType(testcase.filename, testcase.mimeType)
			if got != testcase.want {
				t.Errorf("DetectDatasetType(%q, %q) = %q, want %q",
					testcase.filename, testcase.mimeType, got, testcase.want)
			}
		})
	}
}

func TestRequiresGPU(t *testing.T) {
	for taskType, want := range map[string]bool{
		"cnn":                  true,
		"CNN_Transfer":         true,
		"image_classification": true,
		"bert-finetune":        true,
		"object_detection":     true,
		"classification":       false,
		"regression":           false,
		"random_forest":        false,
		"":                     false,
	} {
		if got := compat.RequiresGPU(taskType); got != want {
			t.Errorf("RequiresGPU(%q) = %v, want %v", taskType, got, want)
		}
	}
}
