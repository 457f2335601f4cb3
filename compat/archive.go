package compat

import (
	"path/filepath"
	"sort"
	"strings"

	"mlforge/model"
	"mlforge/result"
)

// maxArchiveDepth bounds how deep the layout search descends, so a
// nested "dataset/dataset/dataset/..." archive cannot blow up the scan.
const maxArchiveDepth = 4

var junkArchiveNames = map[string]struct{}{
	"__macosx":    {},
	"__pycache__": {},
	".git":        {},
	".ds_store":   {},
}

// Directory names marking the training and held-out splits.
var (
	trainDirNames = []string{"train", "training"}
	testDirNames  = []string{"test", "val", "validation"}
)

// archiveIndex is built once from the entry listing: which directories
// exist, and how many image files each holds directly.
type archiveIndex struct {
	children  map[string][]string
	childSet  map[string]map[string]struct{}
	dirImages map[string]int
}

// InspectArchive discovers the class-folder layout of an image archive
// from its entry listing alone; no content is read. It recognizes a
// train/<class>/ structure with an optional test or validation split,
// or bare class folders, nested up to four directories deep. Junk
// directories such as __MACOSX are ignored.
func InspectArchive(entries []string) (*model.ArchiveLayout, *result.Failure) {
	index := buildIndex(entries)

	trainDir, testDir, ok := index.findLayout("", 0)
	if !ok {
		return nil, result.Incompatible(
			"no class-folder structure found in the image archive",
			"arrange images as train/<class>/image.jpg inside the archive",
			"place each class in its own folder when there is no train/test split",
		)
	}

	classes := index.classDirs(trainDir)
	sort.Strings(classes)

	layout := &model.ArchiveLayout{
		TrainDir:    trainDir,
		TestDir:     testDir,
		Classes:     classes,
		ClassCounts: make(map[string]int, len(classes)),
	}
	for _, class := range classes {
		count := index.dirImages[joinDir(trainDir, class)]
		layout.ClassCounts[class] = count
		layout.TrainSamples += count
		if testDir != "" {
			layout.TestSamples += index.dirImages[joinDir(testDir, class)]
		}
	}
	return layout, nil
}

func buildIndex(entries []string) *archiveIndex {
	index := &archiveIndex{
		children:  make(map[string][]string),
		childSet:  make(map[string]map[string]struct{}),
		dirImages: make(map[string]int),
	}
	for _, entry := range entries {
		isDir := strings.HasSuffix(entry, "/")
		clean := strings.Trim(strings.ReplaceAll(entry, "\\", "/"), "/")
		if clean == "" || hasJunkComponent(clean) {
			continue
		}
		parts := strings.Split(clean, "/")
		dirCount := len(parts)
		if !isDir {
			dirCount--
		}
		for i := 0; i < dirCount; i++ {
			index.addChild(strings.Join(parts[:i], "/"), parts[i])
		}
		if !isDir && isImageFile(parts[len(parts)-1]) {
			index.dirImages[strings.Join(parts[:len(parts)-1], "/")]++
		}
	}
	for parent := range index.children {
		sort.Strings(index.children[parent])
	}
	return index
}

func (ix *archiveIndex) addChild(parent, name string) {
	set, ok := ix.childSet[parent]
	if !ok {
		set = make(map[string]struct{})
		ix.childSet[parent] = set
	}
	if _, ok := set[name]; ok {
		return
	}
	set[name] = struct{}{}
	ix.children[parent] = append(ix.children[parent], name)
}

// findLayout searches depth-first, mirroring the conversion pipeline:
// a train split at the current level wins, then bare class folders,
// then the subdirectories in sorted order.
func (ix *archiveIndex) findLayout(dir string, depth int) (trainDir, testDir string, ok bool) {
	if depth > maxArchiveDepth {
		return "", "", false
	}

	for _, name := range trainDirNames {
		child, found := ix.childNamed(dir, name)
		if !found {
			continue
		}
		candidate := joinDir(dir, child)
		if len(ix.classDirs(candidate)) == 0 {
			continue
		}
		for _, testName := range testDirNames {
			if sibling, found := ix.childNamed(dir, testName); found {
				return candidate, joinDir(dir, sibling), true
			}
		}
		return candidate, "", true
	}

	if len(ix.children[dir]) > 1 && len(ix.classDirs(dir)) > 0 {
		return dir, "", true
	}

	for _, child := range ix.children[dir] {
		if trainDir, testDir, ok = ix.findLayout(joinDir(dir, child), depth+1); ok {
			return trainDir, testDir, true
		}
	}
	return "", "", false
}

// classDirs returns the immediate subdirectories of dir that directly
// contain at least one image.
func (ix *archiveIndex) classDirs(dir string) []string {
	var classes []string
	for _, child := range ix.children[dir] {
		if ix.dirImages[joinDir(dir, child)] > 0 {
			classes = append(classes, child)
		}
	}
	return classes
}

func (ix *archiveIndex) childNamed(dir, lowerName string) (string, bool) {
	for _, child := range ix.children[dir] {
		if strings.ToLower(child) == lowerName {
			return child, true
		}
	}
	return "", false
}

func joinDir(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

func hasJunkComponent(clean string) bool {
	for _, part := range strings.Split(clean, "/") {
		if _, ok := junkArchiveNames[strings.ToLower(part)]; ok {
			return true
		}
	}
	return false
}

func isImageFile(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	_, ok := imageExtensions[ext]
	return ok
}
