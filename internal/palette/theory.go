package palette

import (
	"fmt"
	"strings"
)

// Theory selects the hue relationship used when regenerating unlocked blocks.
type Theory int

const (
	Analogous Theory = iota
	Complementary
	Random
)

// Theories lists the selectable theories in display order.
func Theories() []Theory {
	return []Theory{Analogous, Complementary, Random}
}

func (t Theory) String() string {
	switch t {
	case Analogous:
		return "Analogous"
	case Complementary:
		return "Complementary"
	case Random:
		return "Random"
	default:
		return fmt.Sprintf("Theory(%d)", int(t))
	}
}

// ParseTheory resolves a case-insensitive theory name.
func ParseTheory(name string) (Theory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "analogous":
		return Analogous, nil
	case "complementary":
		return Complementary, nil
	case "random":
		return Random, nil
	default:
		return Analogous, fmt.Errorf("unknown theory %q", name)
	}
}
