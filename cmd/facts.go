package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/factdrill/internal/curriculum"
)

var factsCmd = &cobra.Command{
	Use:   "facts UNIT_ID",
	Short: "Print the facts a unit drills, in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, k, ok := curriculum.Default().FindUnit(args[0])
		if !ok {
			return fmt.Errorf("unknown unit %q (see 'factdrill units')", args[0])
		}
		hide, _ := cmd.Flags().GetBool("hide-answers")

		out := cmd.OutOrStdout()
		facts := u.Facts()
		fmt.Fprintf(out, "%s (%s)\n", u.Title, curriculum.DisplayName(k))
		fmt.Fprintf(out, "%s: %s\n\n", u.Focus, u.Description)
		for i, f := range facts {
			line := f.String()
			if hide {
				line = f.Prompt() + " = ?"
			}
			fmt.Fprintf(out, "%3d.  %s\n", i+1, line)
		}
		fmt.Fprintf(out, "\n%d facts\n", len(facts))
		return nil
	},
}

func init() {
	factsCmd.Flags().Bool("hide-answers", false, "Print the questions without answers")
}
