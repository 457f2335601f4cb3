// Package result holds the structured values the engine returns for
// expected business conditions. The engine never panics for these and
// never terminates the hosting process; callers inspect the category
// and suggestions to recover.
package result

// Category classifies a business-condition failure.
type Category string

const (
	// CategoryInput marks malformed or too-short profiler input.
	// Recoverable by supplying a valid file.
	CategoryInput Category = "input_error"
	// CategoryCompatibility marks an algorithm/task mismatch with the
	// detected modality. Recoverable by choosing a different algorithm
	// or re-uploading data.
	CategoryCompatibility Category = "compatibility_error"
	// CategorySizeQuota marks a dataset above the tier limit.
	// Recoverable by upgrading or downsizing.
	CategorySizeQuota Category = "size_quota_error"
)

// Failure carries a category, a message, and an ordered list of
// remediation suggestions. It implements error so profiler callers can
// treat it uniformly.
type Failure struct {
	Category    Category `json:"category"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (f *Failure) Error() string { return f.Message }

// Input builds an input-error failure.
func Input(msg string, suggestions ...string) *Failure {
	return &Failure{Category: CategoryInput, Message: msg, Suggestions: suggestions}
}

// Incompatible builds a compatibility failure.
func Incompatible(msg string, suggestions ...string) *Failure {
	return &Failure{Category: CategoryCompatibility, Message: msg, Suggestions: suggestions}
}

// OverQuota builds a size-quota failure.
func OverQuota(msg string, suggestions ...string) *Failure {
	return &Failure{Category: CategorySizeQuota, Message: msg, Suggestions: suggestions}
}

// Compatibility is the outcome of an algorithm/modality check. An
// unknown modality yields Valid=true with a Warning rather than an
// Error; a hard mismatch yields Valid=false and an Error message.
type Compatibility struct {
	Valid       bool     `json:"valid"`
	Warning     string   `json:"warning,omitempty"`
	Error       string   `json:"error,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// SizeCheck is the outcome of a tier quota check. MaxAllowedMB is
// always populated so callers can show the limit either way.
type SizeCheck struct {
	Valid        bool     `json:"valid"`
	MaxAllowedMB int      `json:"maxAllowed"`
	Message      string   `json:"message,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}
