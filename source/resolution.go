package source

import "strings"

// Resolution is the recognized vertical resolution of a release.
// Values order ascending by pixel height with ResolutionUnknown lowest,
// so direct comparison picks the sharpest variant.
type Resolution uint8

const (
	ResolutionUnknown Resolution = iota
	Resolution480p
	Resolution720p
	Resolution1080p
)

// ParseResolution maps a literal token to a Resolution.
// Recognition is case-insensitive and tolerant: anything that is not a
// known token yields ResolutionUnknown, never an error.
func ParseResolution(token string) Resolution {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "480p":
		return Resolution480p
	case "720p":
		return Resolution720p
	case "1080p":
		return Resolution1080p
	default:
		return ResolutionUnknown
	}
}

// String returns the literal token form of the resolution.
func (r Resolution) String() string {
	switch r {
	case Resolution480p:
		return "480p"
	case Resolution720p:
		return "720p"
	case Resolution1080p:
		return "1080p"
	default:
		return "unknown"
	}
}

// MarshalText renders the resolution as its literal token.
func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText restores a resolution from its literal token.
func (r *Resolution) UnmarshalText(text []byte) error {
	*r = ParseResolution(string(text))
	return nil
}
