package nrs

import (
	"fmt"

	"github.com/aweris/nrs/locator"
)

// ValidateLink checks that a link is acceptable as an NRS map value.
//
// A name's promise is referential stability: resolving the same name
// twice must yield the same content. Links to versionable targets
// (file containers, NRS map containers, registers) are therefore only
// accepted when they pin a version hash; without one the name would
// silently track the target's evolution.
func ValidateLink(link string) error {
	loc, err := locator.Parse(link)
	if err != nil {
		return fmt.Errorf("nrs: %w", err)
	}
	if loc.HasVersion() {
		return nil
	}
	if loc.ContentType.Versionable() {
		return &ValidationError{Classification: loc.ContentType.String(), Link: link}
	}
	if loc.DataType.Versionable() {
		return &ValidationError{Classification: loc.DataType.String(), Link: link}
	}
	return nil
}
