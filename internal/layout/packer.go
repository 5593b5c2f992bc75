// Package layout converts resolved requirement statuses into
// proportionally-sized display segments for the progress track.
package layout

import (
	"strings"

	"github.com/averyholm/telos/internal/contract"
)

const (
	// maxMinPct is the ceiling on the per-segment height floor: segments
	// never need more than 6% of the track to carry a short label.
	maxMinPct = 6.0
	// floorEpsilon keeps the floor strictly below an even split so at least
	// one segment retains surplus to donate.
	floorEpsilon = 0.001
	// sumTolerance bounds the floating drift tolerated before renormalizing.
	sumTolerance = 1e-6
)

// Result carries the packed segments and whether the height floor had to be
// abandoned (too many segments or too skewed weights to honor it).
type Result struct {
	Segments []contract.Segment
	Degraded bool
}

// Pack lays out one segment per requirement, proportional to its credit
// weight, summing to exactly 100 and each at least minPct tall where
// possible. Deterministic for a given input order; input order is preserved.
func Pack(reqs []contract.RequirementStatus) Result {
	n := len(reqs)
	if n == 0 {
		return Result{}
	}

	weights := make([]float64, n)
	var total float64
	for i, r := range reqs {
		w := r.TotalCredits
		if w < 1 {
			w = 1
		}
		weights[i] = w
		total += w
	}

	heights := make([]float64, n)
	for i, w := range weights {
		heights[i] = 100 * w / total
	}

	minPct := maxMinPct
	if even := 100.0/float64(n) - floorEpsilon; even < minPct {
		minPct = even
	}

	degraded := false
	if minPct > 0 {
		degraded = applyFloor(heights, minPct)
	}

	renormalize(heights)

	segments := make([]contract.Segment, n)
	var cursor float64
	for i, r := range reqs {
		h := heights[i]
		segments[i] = contract.Segment{
			Category:  r.Category,
			Label:     ShortLabel(r.Category),
			HeightPct: h,
			FillPct:   r.FillPercent(),
			StartPct:  cursor,
			MidPct:    cursor + h/2,
			State:     r.State,
		}
		cursor += h
	}

	return Result{Segments: segments, Degraded: degraded}
}

// applyFloor clamps undersized segments up to minPct and recovers the
// created deficit from the remaining segments, each reduced proportionally
// to its surplus above the floor. Returns true when the deficit could not be
// fully recovered.
func applyFloor(heights []float64, minPct float64) bool {
	n := len(heights)
	fixed := make([]bool, n)

	var deficit float64
	for i, h := range heights {
		if h < minPct {
			deficit += minPct - h
			heights[i] = minPct
			fixed[i] = true
		}
	}

	for iter := 0; deficit > sumTolerance && iter <= n+2; iter++ {
		var surplus float64
		for i, h := range heights {
			if !fixed[i] && h > minPct {
				surplus += h - minPct
			}
		}
		if surplus <= sumTolerance {
			return true // floor cannot be fully honored
		}

		take := deficit
		if take > surplus {
			take = surplus
		}
		for i, h := range heights {
			if fixed[i] || h <= minPct {
				continue
			}
			share := (h - minPct) / surplus * take
			if h-share < minPct {
				share = h - minPct
			}
			heights[i] = h - share
			deficit -= share
		}
	}

	return deficit > sumTolerance
}

// renormalize scales heights so they sum to exactly 100, correcting
// floating-point drift from the floor pass.
func renormalize(heights []float64) {
	var sum float64
	for _, h := range heights {
		sum += h
	}
	if sum <= 0 {
		return
	}
	for i := range heights {
		heights[i] = heights[i] / sum * 100
	}
}

// ShortLabel abbreviates a category name to fit inside a segment: full name
// up to 14 characters, otherwise word initials ("Social Science" → "SS",
// "Humanities" → "Humanities").
func ShortLabel(category string) string {
	category = strings.TrimSpace(category)
	if len(category) <= 14 {
		return category
	}
	var b strings.Builder
	for _, word := range strings.Fields(category) {
		r := []rune(word)
		if len(r) == 0 {
			continue
		}
		first := r[0]
		// Skip connective words in abbreviations.
		lower := strings.ToLower(word)
		if lower == "and" || lower == "of" || lower == "the" || lower == "&" {
			continue
		}
		b.WriteRune(first)
	}
	if b.Len() == 0 {
		return category[:14]
	}
	return strings.ToUpper(b.String())
}
