package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sqlsplice/sqlsplice"
)

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the segment layout without rewriting the file",
		Long: `inspect reads the file, applies the boundary line numbers and prints one
row per segment: its 1-based line range, line count and checksum. The
file is not modified. Use it to sanity-check boundaries before running
the swap.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			b, err := cfg.Boundaries()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			lines := sqlsplice.SplitLines(string(data))
			segs, err := b.Segments(len(lines))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			var buf bytes.Buffer
			table := tablewriter.NewWriter(&buf)
			table.SetHeader([]string{"Segment", "Lines", "Count", "MD5"})
			table.SetBorder(false)
			table.SetCenterSeparator("")
			table.SetColumnAlignment([]int{
				tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
				tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
			})
			for _, s := range segs {
				md5sum, err := sqlsplice.Checksum(sqlsplice.JoinLines(s.Slice(lines)), cfg.Newline)
				if err != nil {
					return err
				}
				table.Append([]string{s.Name, lineRange(s), fmt.Sprintf("%d", s.Len()), md5sum})
			}
			table.SetFooter([]string{"Total", "", fmt.Sprintf("%d", len(lines)), ""})
			table.Render()

			cmd.Printf("%s\n\n%s", path, buf.String())
			return nil
		},
	}
}

// lineRange renders a segment's span in 1-based inclusive form, the way
// grep -n numbers lines. Empty segments render as "-".
func lineRange(s sqlsplice.Segment) string {
	if s.Len() == 0 {
		return "-"
	}
	return fmt.Sprintf("%d-%d", s.Start+1, s.End)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
