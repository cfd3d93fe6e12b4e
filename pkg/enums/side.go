package enums

import "fmt"

// Side marks which stance an argument takes. SideUser denotes a
// human-submitted argument regardless of stance.
type Side string

const (
	SideFor     Side = "FOR"
	SideAgainst Side = "AGAINST"
	SideUser    Side = "USER"
)

var validSides = []Side{
	SideFor,
	SideAgainst,
	SideUser,
}

// String implements fmt.Stringer.
func (s Side) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Side.
func (s Side) IsValid() bool {
	for _, candidate := range validSides {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSide converts raw input into a Side.
func ParseSide(value string) (Side, error) {
	for _, candidate := range validSides {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid side %q", value)
}
