package progress

import (
	"strings"

	"github.com/averyholm/telos/internal/domain"
)

// AttributionInput holds everything the institution split needs. Equivalency
// data is supplied externally (articulation agreements), keyed by
// domain.EquivalencyKey.
type AttributionInput struct {
	Completed            []domain.PlanCourse
	TargetInstitution    string
	TotalCreditsRequired float64
	Equivalencies        map[string]domain.Equivalency
	// CurrentOverride pins the current institution instead of inferring it.
	CurrentOverride string
}

// Attribution is the derived split of completed credits between the current
// institution track and the transfer (target institution) track.
type Attribution struct {
	CurrentInstitution string
	CurrentCredits     float64
	CurrentPercent     float64
	TransferCredits    float64
	TransferPercent    float64
}

// AttributeCredits splits completed credits across the two tracks. The
// current institution is the non-target institution with the highest summed
// credits, first-encountered order breaking ties, unless overridden.
// Transfer credits are those earned at the target institution plus completed
// courses elsewhere with a known equivalency mapping. Each percentage is
// clamped to 100 independently.
func AttributeCredits(in AttributionInput) Attribution {
	sums := make(map[string]float64)
	var order []string

	for _, pc := range in.Completed {
		inst := strings.TrimSpace(pc.Course.Institution)
		if inst == "" {
			continue
		}
		key := strings.ToLower(inst)
		if _, seen := sums[key]; !seen {
			order = append(order, inst)
		}
		sums[key] += pc.CreditValue()
	}

	current := in.CurrentOverride
	if current == "" {
		var best float64
		for _, inst := range order {
			if isTarget(inst, in.TargetInstitution) {
				continue
			}
			if s := sums[strings.ToLower(inst)]; s > best {
				best = s
				current = inst
			}
		}
	}

	var currentCredits, transferCredits float64
	for _, pc := range in.Completed {
		inst := pc.Course.Institution
		credits := pc.CreditValue()
		switch {
		case isTarget(inst, in.TargetInstitution):
			transferCredits += credits
		default:
			if _, ok := in.Equivalencies[domain.EquivalencyKey(inst, pc.Course.Code)]; ok {
				transferCredits += credits
			}
		}
		if current != "" && strings.EqualFold(strings.TrimSpace(inst), strings.TrimSpace(current)) {
			currentCredits += credits
		}
	}

	return Attribution{
		CurrentInstitution: current,
		CurrentCredits:     currentCredits,
		CurrentPercent:     creditPercent(currentCredits, in.TotalCreditsRequired),
		TransferCredits:    transferCredits,
		TransferPercent:    creditPercent(transferCredits, in.TotalCreditsRequired),
	}
}

func creditPercent(credits, required float64) float64 {
	if required <= 0 {
		return 0
	}
	pct := credits / required * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func isTarget(institution, target string) bool {
	return strings.EqualFold(strings.TrimSpace(institution), strings.TrimSpace(target))
}
