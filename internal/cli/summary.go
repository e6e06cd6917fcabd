package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/loreweave-dev/loreweave/internal/validate"
)

type CheckSummary struct {
	Mode          string                        `json:"mode"`
	RootPath      string                        `json:"root_path"`
	Valid         bool                          `json:"valid"`
	EntityKinds   int                           `json:"entity_kinds"`
	Relationships int                           `json:"relationship_kinds"`
	Pressures     int                           `json:"pressures"`
	Eras          int                           `json:"eras"`
	Generators    int                           `json:"generators"`
	Systems       int                           `json:"systems"`
	Actions       int                           `json:"actions"`
	InvalidRefs   []validate.InvalidRef         `json:"invalid_refs,omitempty"`
	Orphans       []validate.Orphan             `json:"orphans,omitempty"`
	Compatibility []validate.CompatibilityIssue `json:"compatibility,omitempty"`
}

func PrintCheckSummary(summary CheckSummary, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	}

	status := "issues"
	if summary.Valid && len(summary.Orphans) == 0 {
		status = "ok"
	}
	fmt.Printf("check: %s\n", status)
	fmt.Printf("elements: entityKinds=%d relationshipKinds=%d pressures=%d eras=%d generators=%d systems=%d actions=%d\n",
		summary.EntityKinds,
		summary.Relationships,
		summary.Pressures,
		summary.Eras,
		summary.Generators,
		summary.Systems,
		summary.Actions,
	)
	if len(summary.InvalidRefs) > 0 {
		fmt.Printf("invalid refs (%d):\n", len(summary.InvalidRefs))
		for _, ref := range summary.InvalidRefs {
			fmt.Printf("  %s -> %s %q\n", ref.Location, ref.RefType, ref.RefID)
		}
	}
	if len(summary.Orphans) > 0 {
		fmt.Printf("orphans (%d):\n", len(summary.Orphans))
		for _, orphan := range summary.Orphans {
			fmt.Printf("  %s %s: %s\n", orphan.Type, orphan.ID, orphan.Reason)
		}
	}
	if len(summary.Compatibility) > 0 {
		fmt.Printf("compatibility (%d):\n", len(summary.Compatibility))
		for _, issue := range summary.Compatibility {
			fmt.Printf("  %s %s %s: %s\n", issue.Type, issue.ID, issue.Field, issue.Issue)
		}
	}
	return nil
}
