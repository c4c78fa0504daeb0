package entities

import (
	"regexp"
	"strings"
	"time"
)

var stallIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Stall is a vendor location owned by a shop user
type Stall struct {
	ID        string    `json:"id" db:"id"`
	StallID   string    `json:"stall_id" db:"stall_id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location,omitempty" db:"location"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DisplayName returns the stall name, falling back to its stall id
func (s *Stall) DisplayName() string {
	if s == nil {
		return ""
	}
	if s.Name != "" {
		return s.Name
	}
	return s.StallID
}

// NormalizeStallID returns the canonical (trimmed, lowercase) form of a stall id
func NormalizeStallID(stallID string) string {
	return strings.ToLower(strings.TrimSpace(stallID))
}

// IsValidStallID reports whether stallID only contains letters, digits and underscores
func IsValidStallID(stallID string) bool {
	return stallIDPattern.MatchString(stallID)
}
