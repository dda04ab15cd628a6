package nrs

import (
	"fmt"
	"strings"

	"github.com/aweris/nrs/locator"
)

// A public name is a sequence of dot-separated labels, optionally
// prefixed with the locator scheme: "blog.dave" or "nrs://blog.dave".
// The final label is the top name (the owning container); everything
// before it is the subname path.

// ParseSubnames strips the top name from a full public name and returns
// the remaining labels joined with "." — the key the name resolves
// under. A single-label name yields "".
//
// Names containing empty labels ("a..b", leading or trailing dots) are
// rejected with ErrMalformedName.
func ParseSubnames(fullName string) (string, error) {
	labels, err := splitName(fullName)
	if err != nil {
		return "", err
	}
	return JoinSubnames(labels[:len(labels)-1]), nil
}

// TopName returns the final label of a full public name.
func TopName(fullName string) (string, error) {
	labels, err := splitName(fullName)
	if err != nil {
		return "", err
	}
	return labels[len(labels)-1], nil
}

// JoinSubnames composes a subname path from an ordered label sequence.
// The labels exclude the top name; an empty sequence yields "".
func JoinSubnames(labels []string) string {
	return strings.Join(labels, ".")
}

func splitName(fullName string) ([]string, error) {
	name := strings.TrimPrefix(fullName, locator.Scheme+"://")
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedName, fullName)
	}
	labels := strings.Split(name, ".")
	for _, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%w: empty label in %q", ErrMalformedName, fullName)
		}
	}
	return labels, nil
}
