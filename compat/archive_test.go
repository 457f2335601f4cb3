package compat_test

import (
	"reflect"
	"testing"

	"mlforge/compat"
	"mlforge/result"
)

func TestInspectArchiveTrainTestSplit(t *testing.T) {
	entries := []string{
		"dataset/",
		"dataset/README.md",
		"dataset/train/cats/1.jpg",
		"dataset/train/cats/2.jpg",
		"dataset/train/dogs/1.jpg",
		"dataset/test/cats/3.jpg",
		"dataset/test/dogs/4.jpg",
		"__MACOSX/dataset/train/cats/._1.jpg",
		"dataset/train/.DS_Store",
	}

	layout, failure := compat.InspectArchive(entries)
	if failure != nil {
		t.Fatal(failure)
	}
	if layout.TrainDir != "dataset/train" {
		t.Errorf("TrainDir = %q, want dataset/train", layout.TrainDir)
	}
	if layout.TestDir != "dataset/test" {
		t.Errorf("TestDir = %q, want dataset/test", layout.TestDir)
	}
	if !reflect.DeepEqual(layout.Classes, []string{"cats", "dogs"}) {
		t.Errorf("Classes = %v, want [cats dogs]", layout.Classes)
	}
	if layout.TrainSamples != 3 || layout.TestSamples != 2 {
		t.Errorf("samples = (%d, %d), want (3, 2)", layout.TrainSamples, layout.TestSamples)
	}
	if layout.ClassCounts["cats"] != 2 || layout.ClassCounts["dogs"] != 1 {
		t.Errorf("ClassCounts = %v", layout.ClassCounts)
	}
}

func TestInspectArchiveValidationSplit(t *testing.T) {
	entries := []string{
		"train/ants/a.jpg",
		"train/bees/b.jpg",
		"val/ants/c.jpg",
	}
	layout, failure := compat.InspectArchive(entries)
	if failure != nil {
		t.Fatal(failure)
	}
	if layout.TrainDir != "train" || layout.TestDir != "val" {
		t.Errorf("layout = (%q, %q), want (train, val)", layout.TrainDir, layout.TestDir)
	}
	if layout.TestSamples != 1 {
		t.Errorf("TestSamples = %d, want 1", layout.TestSamples)
	}
}

func TestInspectArchiveBareClassFolders(t *testing.T) {
	entries := []string{
		"cats/a.png",
		"cats/b.png",
		"dogs/c.png",
	}
	layout, failure := compat.InspectArchive(entries)
	if failure != nil {
		t.Fatal(failure)
	}
	if layout.TrainDir != "" {
		t.Errorf("TrainDir = %q, want archive root", layout.TrainDir)
	}
	if layout.TestDir != "" {
		t.Errorf("TestDir = %q, want none", layout.TestDir)
	}
	if !reflect.DeepEqual(layout.Classes, []string{"cats", "dogs"}) {
		t.Errorf("Classes = %v, want [cats dogs]", layout.Classes)
	}
	if layout.TrainSamples != 3 {
		t.Errorf("TrainSamples = %d, want 3", layout.TrainSamples)
	}
}

func TestInspectArchiveNestedRoot(t *testing.T) {
	entries := []string{
		"export/flowers/train/rose/1.jpg",
		"export/flowers/train/tulip/2.jpg",
	}
	layout, failure := compat.InspectArchive(entries)
	if failure != nil {
		t.Fatal(failure)
	}
	if layout.TrainDir != "export/flowers/train" {
		t.Errorf("TrainDir = %q", layout.TrainDir)
	}
	if layout.TestDir != "" {
		t.Errorf("TestDir = %q, want none", layout.TestDir)
	}
}

func TestInspectArchiveNoStructure(t *testing.T) {
	for name, entries := range map[string][]string{
		"no images":    {"data.csv", "README.md"},
		"empty":        {},
		"flat images":  {"1.jpg", "2.jpg"},
		"single class": {"all/1.jpg", "all/2.jpg"},
	} {
		t.Run(name, func(t *testing.T) {
			_, failure := compat.InspectArchive(entries)
			if failure == nil {
				t.Fatal("expected a failure")
			}
			if failure.Category != result.CategoryCompatibility {
				t.Errorf("category = %q, want %q", failure.Category, result.CategoryCompatibility)
			}
			if len(failure.Suggestions) == 0 {
				t.Error("expected layout suggestions")
			}
		})
	}
}
