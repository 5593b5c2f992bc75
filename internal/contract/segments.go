package contract

// Segment is one proportionally-sized region of the progress track.
// Heights sum to exactly 100 across a segment list; StartPct/MidPct are
// cumulative offsets used to anchor detail overlays, in input order.
type Segment struct {
	Category  string
	Label     string // short label fitting inside the segment
	HeightPct float64
	FillPct   float64 // clamped to [0,100]
	StartPct  float64
	MidPct    float64
	State     CompletionState
}

type SegmentsRequest struct {
	PlanID string
	Filter string // view filter string, "all" when empty
}

type SegmentsResponse struct {
	PlanID   string
	Segments []Segment
	// Degraded is set when there were too many segments (or too skewed
	// weights) to honor the minimum-height floor for every segment.
	Degraded bool
}
