package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/loreweave-dev/loreweave/internal/validate"
)

func RunTags(cmd *cobra.Command, args []string) error {
	asJSON, err := boolFlag(cmd, "json")
	if err != nil {
		return err
	}

	project, _, err := loadProject(args)
	if err != nil {
		return err
	}

	counts := validate.ComputeTagUsage(project)
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(counts)
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	if len(tags) == 0 {
		fmt.Println("no tag references")
		return nil
	}
	for _, tag := range tags {
		fmt.Printf("%s: %d\n", tag, counts[tag])
	}
	return nil
}
