package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loreweave-dev/loreweave/internal/validate"
)

type UsageReport struct {
	Type       validate.ElementType       `json:"type"`
	ID         string                     `json:"id"`
	Summary    string                     `json:"summary"`
	Usage      *validate.Usage            `json:"usage,omitempty"`
	Validation validate.ElementValidation `json:"validation"`
}

func RunUsage(cmd *cobra.Command, args []string) error {
	asJSON, err := boolFlag(cmd, "json")
	if err != nil {
		return err
	}
	path, err := cmd.Flags().GetString("path")
	if err != nil {
		return err
	}
	var pathArgs []string
	if path != "" {
		pathArgs = []string{path}
	}

	elemType := validate.ElementType(args[0])
	id := args[1]

	project, _, err := loadProject(pathArgs)
	if err != nil {
		return err
	}

	usage := validate.Build(project)
	bucket := usage.UsageFor(elemType, id)
	report := UsageReport{
		Type:       elemType,
		ID:         id,
		Summary:    validate.UsageSummary(bucket),
		Usage:      bucket,
		Validation: usage.ElementValidation(elemType, id),
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Printf("%s %s: %s\n", report.Type, report.ID, report.Summary)
	if report.Validation.Orphaned {
		fmt.Println("orphaned: yes")
	}
	for _, ref := range report.Validation.InvalidRefs {
		fmt.Printf("invalid ref: %s -> %s %q\n", ref.Location, ref.RefType, ref.RefID)
	}
	for _, issue := range report.Validation.Compatibility {
		fmt.Printf("compatibility: %s: %s\n", issue.Field, issue.Issue)
	}
	if bucket != nil {
		printRefs("generators", bucket.Generators)
		printRefs("systems", bucket.Systems)
		printRefs("actions", bucket.Actions)
		printRefs("eras", bucket.Eras)
		printRefs("pressures", bucket.Pressures)
	}
	return nil
}

func printRefs(label string, refs []validate.Ref) {
	if len(refs) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", label, len(refs))
	for _, ref := range refs {
		if ref.Field == "" {
			fmt.Printf("  %s\n", ref.ID)
			continue
		}
		fmt.Printf("  %s at %s\n", ref.ID, ref.Field)
	}
}
