package utils

import "strings"

// ParseOptionLines splits a newline-separated block of answer options, trims
// each line and drops blank ones. Windows line endings are accepted.
func ParseOptionLines(block string) []string {
	lines := strings.Split(strings.ReplaceAll(block, "\r\n", "\n"), "\n")
	return CleanOptions(lines)
}

// CleanOptions trims every option and drops empty entries and exact
// duplicates, keeping the first occurrence order.
func CleanOptions(options []string) []string {
	out := make([]string, 0, len(options))
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		if _, dup := seen[opt]; dup {
			continue
		}
		seen[opt] = struct{}{}
		out = append(out, opt)
	}
	return out
}
