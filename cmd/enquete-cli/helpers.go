package main

import (
	"fmt"
	"strconv"
)

// parseID parses a numeric command-line argument into an entity ID.
func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return uint(id), nil
}
