package theme

import "strings"

// Name identifies a skin: a complete alternate visual treatment of the
// same logical content.
type Name string

const (
	NameStarship    Name = "starship"
	NameCyberpunk   Name = "cyberpunk"
	NameTerminal    Name = "terminal"
	NameHolographic Name = "holographic"
	NameRetro       Name = "retro"
	NameMCDU        Name = "mcdu"
)

// Default is adopted whenever no valid override or preference exists.
const Default = NameCyberpunk

var names = [...]Name{NameStarship, NameCyberpunk, NameTerminal, NameHolographic, NameRetro, NameMCDU}

// migrations maps retired skin names to their replacements. Applied by
// Normalize at every point a name is read from an external source, so
// the two ingestion sites (session override, durable storage) can never
// drift apart.
var migrations = map[string]Name{
	"lcars": NameStarship,
	"win31": NameRetro,
}

// Names returns the valid skin names in display order.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names[:])
	return out
}

// Known reports whether n is a member of the valid name set.
func Known(n Name) bool {
	for _, candidate := range names {
		if candidate == n {
			return true
		}
	}
	return false
}

// Normalize maps a raw external string to a valid skin name. Retired
// names migrate to their replacements; unrecognized strings fail
// validation rather than passing through.
func Normalize(raw string) (Name, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return "", false
	}
	if migrated, ok := migrations[trimmed]; ok {
		return migrated, true
	}
	if Known(Name(trimmed)) {
		return Name(trimmed), true
	}
	return "", false
}

// Next returns the name after n in display order, wrapping around. For
// unknown names it returns the first name, so cycling always lands
// inside the valid set.
func Next(n Name) Name {
	for i, candidate := range names {
		if candidate == n {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
