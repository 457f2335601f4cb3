package model

// ArchiveLayout describes the class-folder structure discovered in an
// image-archive entry listing.
type ArchiveLayout struct {
	// TrainDir is the directory holding one subdirectory per class.
	TrainDir string `json:"trainDir"`
	// TestDir is the held-out split directory, empty when the archive
	// has none.
	TestDir string `json:"testDir,omitempty"`
	// Classes holds the class folder names, sorted.
	Classes      []string       `json:"classes"`
	TrainSamples int            `json:"trainSamples"`
	TestSamples  int            `json:"testSamples"`
	ClassCounts  map[string]int `json:"classCounts"`
}
