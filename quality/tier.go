package quality

import (
	"fmt"
	"strconv"
	"strings"
)

// Tier is a discrete quality level. Higher tiers are strictly more valuable
// and a single transition never moves flow to a lower tier.
type Tier int

// The five quality tiers, in ascending order.
const (
	Normal Tier = iota
	Uncommon
	Rare
	Epic
	Legendary
)

const (
	// NumTiers is the size of a single-stage transition matrix.
	NumTiers = 5

	// CompositeSize is the size of a coupled two-stage transition matrix.
	CompositeSize = 2 * NumTiers

	// NoKeep is the keep threshold that keeps nothing: every row circulates.
	// It is only meaningful as a threshold, never as a tier of flow.
	NoKeep Tier = NumTiers
)

var tierNames = [NumTiers]string{"normal", "uncommon", "rare", "epic", "legendary"}

// Tiers lists every tier in ascending order.
func Tiers() []Tier {
	return []Tier{Normal, Uncommon, Rare, Epic, Legendary}
}

// Valid reports whether t is one of the five tiers.
func (t Tier) Valid() bool { return t >= Normal && t <= Legendary }

// ValidKeep reports whether t is usable as a keep threshold (a tier or NoKeep).
func (t Tier) ValidKeep() bool { return t >= Normal && t <= NoKeep }

// String returns the lower-case tier name, "none" for NoKeep.
func (t Tier) String() string {
	switch {
	case t.Valid():
		return tierNames[t]
	case t == NoKeep:
		return "none"
	default:
		return "Tier(" + strconv.Itoa(int(t)) + ")"
	}
}

// ParseTier accepts a tier name (case-insensitive), "none" for NoKeep, or the
// numeric index 0..5.
func ParseTier(s string) (Tier, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range tierNames {
		if key == name {
			return Tier(i), nil
		}
	}
	if key == "none" {
		return NoKeep, nil
	}
	n, err := strconv.Atoi(key)
	if err != nil || !Tier(n).ValidKeep() {
		return 0, qualityErrorf(opParseTier, fmt.Errorf("%q: %w", s, ErrInvalidTier))
	}

	return Tier(n), nil
}

// MarshalText implements encoding.TextMarshaler (YAML/flags use the name).
func (t Tier) MarshalText() ([]byte, error) {
	if !t.ValidKeep() {
		return nil, qualityErrorf(opParseTier, ErrInvalidTier)
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseTier.
func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}
