package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/viant/dequery/rule"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available rules in application order",
	Run: func(cmd *cobra.Command, args []string) {
		printRules(os.Stdout, rule.Default())
	},
}

func printRules(out io.Writer, registry *rule.Registry) {
	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tBASELINE\tDESCRIPTION")
	for _, candidate := range registry.Rules() {
		fmt.Fprintf(writer, "%s\t%d\t%s\n", candidate.Name(), candidate.Baseline(), candidate.Description())
	}
	_ = writer.Flush()
}
