// Package compat checks a requested algorithm and task against the
// detected dataset modality, detects the modality itself from filename
// and MIME type, and inspects image-archive layouts.
package compat

import (
	"path/filepath"
	"strings"

	"mlforge/model"
)

var imageExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {},
	"bmp": {}, "webp": {}, "tiff": {},
}

var tabularExtensions = map[string]struct{}{
	"csv": {}, "xlsx": {}, "xls": {},
	"parquet": {}, "json": {}, "tsv": {},
}

var archiveExtensions = map[string]struct{}{
	"zip": {}, "tar": {}, "gz": {},
}

// Archives are assumed to hold images only when the name says so;
// they are never classified tabular by extension alone.
var imageArchiveKeywords = []string{"images", "img", "photos", "pics"}

var tabularMIMETypes = map[string]struct{}{
	"text/csv":                  {},
	"application/csv":           {},
	"application/json":          {},
	"text/tab-separated-values": {},
	"application/vnd.ms-excel":  {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
}

// DetectDatasetType classifies a dataset from its filename, falling
// back to the MIME type for archives and unrecognized extensions.
// File content is never inspected.
func DetectDatasetType(filename, mimeType string) model.DatasetType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if _, ok := imageExtensions[ext]; ok {
		return model.DatasetImage
	}
	if _, ok := tabularExtensions[ext]; ok {
		return model.DatasetTabular
	}
	if _, ok := archiveExtensions[ext]; ok {
		lower := strings.ToLower(filename)
		for _, keyword := range imageArchiveKeywords {
			if strings.Contains(lower, keyword) {
				return model.DatasetImage
			}
		}
	}
	return sniffMIME(mimeType)
}

func sniffMIME(mimeType string) model.DatasetType {
	mime := strings.ToLower(strings.TrimSpace(mimeType))
	if mime == "" {
		return model.DatasetUnknown
	}
	if strings.HasPrefix(mime, "image/") {
		return model.DatasetImage
	}
	if _, ok := tabularMIMETypes[mime]; ok {
		return model.DatasetTabular
	}
	return model.DatasetUnknown
}
