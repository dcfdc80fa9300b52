package utils

import (
	"fmt"
	"strings"
)

// SplitFullName splits an "owner/name" repository full name into its components
func SplitFullName(fullName string) (owner, name string, err error) {
	parts := strings.Split(strings.Trim(fullName, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository full name %q", fullName)
	}

	return parts[0], parts[1], nil
}

// BranchFromRef strips the refs/heads/ prefix from a git ref
func BranchFromRef(ref string) string {
	return strings.TrimPrefix(ref, "refs/heads/")
}
