package textify

// CandidateFile is a file discovered during traversal, before
// classification. Candidates are ephemeral; they live only for the
// duration of a run.
type CandidateFile struct {
	RelPath string // Slash-separated path relative to the repository root.
	AbsPath string // Absolute path on disk.
	Size    int64  // Size in bytes.
}

// Reason tags why a candidate was included or excluded.
type Reason string

// Classification reasons.
const (
	ReasonIncluded Reason = "included"
	ReasonIgnored  Reason = "ignored"
	ReasonBinary   Reason = "binary"
	ReasonTooLarge Reason = "too-large"
)

// Decision is the classification outcome for a single candidate. Every
// candidate yields exactly one Decision.
type Decision struct {
	Include bool
	Reason  Reason
}

// Section is one labeled block of the combined output document.
type Section struct {
	Path string // Relative path named in the section header.
	Body string // Formatted header plus file content.
}

// Stats counts the outcome of a collection pass.
type Stats struct {
	Processed int // Files whose content made it into the output.
	Skipped   int // Files excluded by classification.
}
