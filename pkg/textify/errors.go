package textify

import "fmt"

// InvalidPathError reports a repository root that is missing or not a
// directory. It is fatal and aborts the run before traversal.
type InvalidPathError struct {
	Path string
	Err  error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %s: %v", e.Path, e.Err)
}

func (e *InvalidPathError) Unwrap() error { return e.Err }

// WriteError reports a failure writing the combined output file. It is
// fatal and surfaces after traversal with a non-zero exit.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write output %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
