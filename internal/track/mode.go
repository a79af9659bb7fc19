package track

import (
	"fmt"
	"strings"
)

// Mode selects which path the steering target is taken from.
type Mode int

const (
	// ModeCenter follows the caller supplied centerline waypoints.
	ModeCenter Mode = iota
	// ModeShortcut follows the built-in racing line with half the sight.
	ModeShortcut
)

func (m Mode) String() string {
	switch m {
	case ModeCenter:
		return "center"
	case ModeShortcut:
		return "shortcut"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "center" or "shortcut", ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return ModeCenter, nil
	case "shortcut":
		return ModeShortcut, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeCenter && m != ModeShortcut {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
