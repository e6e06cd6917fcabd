package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loreweave-dev/loreweave/internal/validate"
)

func RunCheck(cmd *cobra.Command, args []string) error {
	asJSON, err := boolFlag(cmd, "json")
	if err != nil {
		return err
	}
	strict, err := boolFlag(cmd, "strict")
	if err != nil {
		return err
	}

	project, root, err := loadProject(args)
	if err != nil {
		return err
	}

	usage := validate.Build(project)
	summary := CheckSummary{
		Mode:          "check",
		RootPath:      root,
		EntityKinds:   len(usage.EntityKinds),
		Relationships: len(usage.RelationshipKinds),
		Pressures:     len(usage.Pressures),
		Eras:          len(project.Eras),
		Generators:    len(usage.Generators),
		Systems:       len(usage.Systems),
		Actions:       len(project.Actions),
		InvalidRefs:   usage.Results.InvalidRefs,
		Orphans:       usage.Results.Orphans,
		Compatibility: usage.Results.Compatibility,
	}
	summary.Valid = len(summary.InvalidRefs) == 0 && len(summary.Compatibility) == 0

	if err := PrintCheckSummary(summary, asJSON); err != nil {
		return err
	}
	if strict && (!summary.Valid || len(summary.Orphans) > 0) {
		return fmt.Errorf("check found %d invalid refs, %d orphans, %d compatibility issues",
			len(summary.InvalidRefs), len(summary.Orphans), len(summary.Compatibility))
	}
	return nil
}
