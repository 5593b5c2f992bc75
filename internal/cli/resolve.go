package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/averyholm/telos/internal/domain"
)

// resolvePlan resolves a plan flag value to a plan ID. An empty value picks
// the only plan when exactly one exists; a non-empty value matches a full ID,
// an ID prefix, or a case-insensitive name.
func resolvePlan(ctx context.Context, app *App, flag string) (string, error) {
	plans, err := app.Plans.List(ctx)
	if err != nil {
		return "", fmt.Errorf("listing plans: %w", err)
	}

	if flag == "" {
		if len(plans) == 1 {
			return plans[0].ID, nil
		}
		if len(plans) == 0 {
			return "", fmt.Errorf("no plans exist; import one with `telos import <file>`")
		}
		return "", fmt.Errorf("multiple plans exist; pick one with --plan")
	}

	var matches []*domain.Plan
	for _, p := range plans {
		if p.ID == flag {
			return p.ID, nil
		}
		if strings.HasPrefix(p.ID, flag) || strings.EqualFold(p.Name, flag) {
			matches = append(matches, p)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0].ID, nil
	case 0:
		return "", fmt.Errorf("no plan matches %q", flag)
	}
	return "", fmt.Errorf("%q is ambiguous across %d plans", flag, len(matches))
}
