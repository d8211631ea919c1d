package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/factdrill/internal/curriculum"
	"github.com/abhisek/factdrill/internal/store"
)

// progressReport is the --toml document.
type progressReport struct {
	Curricula []curriculumProgress `toml:"curriculum"`
}

type curriculumProgress struct {
	Key       string         `toml:"key"`
	Name      string         `toml:"name"`
	Total     int            `toml:"total_units"`
	Completed []unitProgress `toml:"completed"`
}

type unitProgress struct {
	UnitID      string    `toml:"unit_id"`
	Title       string    `toml:"title"`
	FactCount   int       `toml:"fact_count"`
	CompletedAt time.Time `toml:"completed_at"`
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show which units have been completed",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := listCompleted(cmd)
		if err != nil {
			return err
		}
		report := buildProgress(curriculum.Default(), rows)

		out := cmd.OutOrStdout()
		if asTOML, _ := cmd.Flags().GetBool("toml"); asTOML {
			enc := toml.NewEncoder(out)
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("encode progress: %w", err)
			}
			return nil
		}

		for i, cp := range report.Curricula {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s: %d of %d units completed\n", cp.Name, len(cp.Completed), cp.Total)
			fmt.Fprintln(out, strings.Repeat("─", 64))
			for _, u := range cp.Completed {
				fmt.Fprintf(out, "  ✓ %-40s  %s\n", u.Title, u.CompletedAt.Local().Format("2006-01-02 15:04"))
			}
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().Bool("toml", false, "Print the report as TOML")
}

// buildProgress groups completed units by curriculum in catalog order.
// Rows for units no longer in the catalog are skipped.
func buildProgress(cat *curriculum.Catalog, rows []store.CompletedUnit) progressReport {
	byUnit := make(map[string]store.CompletedUnit, len(rows))
	for _, r := range rows {
		byUnit[r.UnitID] = r
	}

	var report progressReport
	for _, k := range cat.Keys() {
		cur, _ := cat.Curriculum(k)
		cp := curriculumProgress{
			Key:       string(k),
			Name:      curriculum.DisplayName(k),
			Total:     len(cur.Units),
			Completed: []unitProgress{},
		}
		for _, u := range cur.Units {
			r, ok := byUnit[u.ID]
			if !ok {
				continue
			}
			cp.Completed = append(cp.Completed, unitProgress{
				UnitID:      u.ID,
				Title:       u.Title,
				FactCount:   r.FactCount,
				CompletedAt: r.CompletedAt.UTC(),
			})
		}
		report.Curricula = append(report.Curricula, cp)
	}
	return report
}
