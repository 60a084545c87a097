package publish

import (
	"errors"
	"fmt"
)

// Category classifies why a step failed.
type Category string

const (
	// CategoryPrecondition is a missing tool or input file,
	// detected before any side effect.
	CategoryPrecondition Category = "precondition"
	// CategoryCorrectness is a failed smoke or comprehensive test.
	CategoryCorrectness Category = "correctness"
	// CategoryPackaging is a failure of the build frontend or validator.
	CategoryPackaging Category = "packaging"
	// CategoryIntegrity is a required file missing from the built archive.
	CategoryIntegrity Category = "integrity"
	// CategoryUpload is a non-zero exit of the upload tool.
	CategoryUpload Category = "upload"
)

var (
	ErrToolNotFound        = errors.New("required tool not found")
	ErrFileNotFound        = errors.New("required file not found")
	ErrSmokeFailed         = errors.New("smoke test failed")
	ErrChecksFailed        = errors.New("tests failed")
	ErrUnexpectedArtifacts = errors.New("unexpected distribution artifacts")
	ErrVersionMismatch     = errors.New("artifact versions differ")
	ErrUploadFailed        = errors.New("upload failed")
)

// StepError is returned by a pipeline when one of its steps failed.
type StepError struct {
	Step     string
	Category Category
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed (%s): %v", e.Step, e.Category, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// CategoryOf returns the category of the failed step in err's chain.
func CategoryOf(err error) (Category, bool) {
	var serr *StepError
	if errors.As(err, &serr) {
		return serr.Category, true
	}

	return "", false
}
