package main

import (
	"fmt"
	"strings"
)

// flagSet represents a flag or argument that is either set (true) or not set (false).
type flagSet struct {
	name  string
	isSet bool
}

// requireAtLeastOne returns an error if none of the given flags are set.
func requireAtLeastOne(flags ...flagSet) error {
	for _, f := range flags {
		if f.isSet {
			return nil
		}
	}

	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.name
	}
	return fmt.Errorf("at least one of %s is required", strings.Join(names, ", "))
}
