package palette

import (
	"math"
	"math/rand/v2"
)

const (
	// hueDrift bounds the analogous step and the complementary jitter.
	hueDrift = 60.0

	seedMinSV = 0.5
	seedMaxSV = 0.9

	chainMinSV = 0.5
	chainMaxSV = 0.8
)

// SeedMode selects how locked hues are averaged into the seed hue.
type SeedMode int

const (
	// SeedArithmetic averages hue degrees directly. It is not wraparound
	// aware: 350 and 10 average to 180.
	SeedArithmetic SeedMode = iota
	// SeedCircular averages hues as unit vectors: 350 and 10 average to 0.
	SeedCircular
)

// Stats summarises one regeneration.
type Stats struct {
	Theory      Theory
	Locked      int
	Regenerated int
	SeedHue     float64
	FromLocked  bool
}

// Engine regenerates unlocked blocks. All randomness comes from the source
// supplied at construction, so a seeded source makes generation repeatable.
type Engine struct {
	rng  *rand.Rand
	mode SeedMode
}

// NewEngine creates an engine drawing from rng.
func NewEngine(rng *rand.Rand, mode SeedMode) *Engine {
	return &Engine{rng: rng, mode: mode}
}

// Regenerate assigns new colors to every occupied, unlocked block of p.
// Locked blocks are never modified.
//
// With locked blocks present the chain starts at their mean hue and each
// regenerated block keeps its own saturation and value. Without locks the
// first block is fully randomized and seeds the chain, and the following
// blocks get fresh saturation and value. Each step offsets from the hue
// assigned just before it, not from the seed.
func (e *Engine) Regenerate(p *Palette, theory Theory) Stats {
	var locked, unlocked []*Block
	for _, b := range p.occupied() {
		if b.Locked {
			locked = append(locked, b)
		} else {
			unlocked = append(unlocked, b)
		}
	}

	stats := Stats{Theory: theory, Locked: len(locked)}
	if len(unlocked) == 0 {
		return stats
	}

	rest := unlocked
	var prev float64
	if len(locked) > 0 {
		prev = e.seedHue(locked)
		stats.FromLocked = true
	} else {
		e.randomize(unlocked[0])
		prev = unlocked[0].Color.H
		rest = unlocked[1:]
		stats.Regenerated++
	}
	stats.SeedHue = prev

	for _, b := range rest {
		if theory == Random {
			e.randomize(b)
			stats.Regenerated++
			continue
		}

		var hue float64
		switch theory {
		case Complementary:
			hue = prev + 180 + e.uniform(-hueDrift, hueDrift)
		default:
			hue = prev + e.uniform(0, hueDrift)
		}

		s, v := b.Color.S, b.Color.V
		if !stats.FromLocked {
			s = e.uniform(chainMinSV, chainMaxSV)
			v = e.uniform(chainMinSV, chainMaxSV)
		}

		b.SetHSV(hue, s, v)
		prev = b.Color.H
		stats.Regenerated++
	}

	return stats
}

func (e *Engine) randomize(b *Block) {
	b.SetHSV(
		e.uniform(0, 360),
		e.uniform(seedMinSV, seedMaxSV),
		e.uniform(seedMinSV, seedMaxSV),
	)
}

func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

func (e *Engine) seedHue(locked []*Block) float64 {
	if e.mode == SeedCircular {
		return CircularMean(hues(locked))
	}
	return ArithmeticMean(hues(locked))
}

func hues(blocks []*Block) []float64 {
	out := make([]float64, len(blocks))
	for i, b := range blocks {
		out[i] = b.Color.H
	}
	return out
}

// ArithmeticMean is the plain average of the given hues in degrees.
func ArithmeticMean(hues []float64) float64 {
	if len(hues) == 0 {
		return 0
	}
	var sum float64
	for _, h := range hues {
		sum += h
	}
	return sum / float64(len(hues))
}

// CircularMean averages hues on the color wheel, returning a value in
// [0,360). Opposing hues that cancel out yield 0.
func CircularMean(hues []float64) float64 {
	if len(hues) == 0 {
		return 0
	}
	var sin, cos float64
	for _, h := range hues {
		rad := h * math.Pi / 180
		sin += math.Sin(rad)
		cos += math.Cos(rad)
	}
	if math.Abs(sin) < 1e-9 && math.Abs(cos) < 1e-9 {
		return 0
	}
	deg := math.Atan2(sin, cos) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
