package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/store"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the units of each curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		only, _ := cmd.Flags().GetString("curriculum")
		cat := curriculum.Default()

		keys := cat.Keys()
		if only != "" {
			k := curriculum.Key(strings.ToLower(only))
			if _, ok := cat.Curriculum(k); !ok {
				return fmt.Errorf("unknown curriculum %q", only)
			}
			keys = []curriculum.Key{k}
		}

		done, err := completedUnitIDs(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, k := range keys {
			cur, _ := cat.Curriculum(k)
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, curriculum.DisplayName(k))
			fmt.Fprintf(out, "%-8s  %-40s  %5s  %s\n", "ID", "Title", "Facts", "Done")
			fmt.Fprintln(out, strings.Repeat("─", 64))
			for _, u := range cur.Units {
				mark := ""
				if done[u.ID] {
					mark = "✓"
				}
				fmt.Fprintf(out, "%-8s  %-40s  %5d  %s\n", u.ID, u.Title, len(u.Facts()), mark)
			}
		}
		return nil
	},
}

func init() {
	unitsCmd.Flags().String("curriculum", "", "Only list this curriculum (addition or subtraction)")
}

// completedUnitIDs reads the completed units from the store.
func completedUnitIDs(cmd *cobra.Command) (map[string]bool, error) {
	rows, err := listCompleted(cmd)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(rows))
	for _, r := range rows {
		done[r.UnitID] = true
	}
	return done, nil
}

// listCompleted opens the configured store and lists completed units.
// A missing database means nothing has been completed yet and is left
// uncreated.
func listCompleted(cmd *cobra.Command) ([]store.CompletedUnit, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(cfg.DBPath); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	rows, err := st.CompletedUnitRepo().List(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("list completed units: %w", err)
	}
	return rows, nil
}
