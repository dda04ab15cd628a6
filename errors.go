package nrs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("nrs: subname not found")
	ErrMalformedName   = errors.New("nrs: malformed public name")
	ErrVersionRequired = errors.New("nrs: link requires a version hash")
	ErrNoRemote        = errors.New("nrs: no remote configured")
)

// ValidationError rejects a link whose target is versionable but whose
// locator carries no version hash.
type ValidationError struct {
	// Classification is the versionable content or data type of the
	// linked target.
	Classification string

	// Link is the literal locator string that was rejected.
	Link string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("the linked content (%s) is versionable, therefore NRS requires the link to specify a version hash: %q", e.Classification, e.Link)
}

func (e *ValidationError) Unwrap() error {
	return ErrVersionRequired
}
