package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/richie-woo-berkeley/Sheets-C6-Multiplatform/internal/c6"
	"github.com/spf13/cobra"
)

// enzymesCmd represents the enzymes command
var enzymesCmd = &cobra.Command{
	Use:   "enzymes [name]",
	Short: "List the recognized restriction enzymes",
	Long: `List the restriction enzymes the simulator recognizes, with their
recognition sequence and the signed cut offsets of each strand (measured from
the end of the recognition site). With a name argument, only enzymes whose
name contains it are shown.`,
	Run: runEnzymes,
}

func runEnzymes(cmd *cobra.Command, args []string) {
	query := ""
	if len(args) > 0 {
		query = strings.ToLower(args[0])
	}

	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	matched := false
	for _, enz := range c6.Registry() {
		if query != "" && !strings.Contains(strings.ToLower(enz.Name), query) {
			continue
		}
		matched = true

		overhang := "3' overhang"
		if enz.IsFivePrime {
			overhang = "5' overhang"
		}
		if enz.Cut5 == enz.Cut3 {
			overhang = "blunt"
		}
		fmt.Fprintf(w, "%s\t%s\t(%d/%d)\t%s\n", enz.Name, enz.Recognition, enz.Cut5, enz.Cut3, overhang)
	}

	if !matched {
		fmt.Fprintf(w, "failed to find any enzymes for %s\n", query)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(enzymesCmd)
}
