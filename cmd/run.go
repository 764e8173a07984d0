package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/richie-woo-berkeley/Sheets-C6-Multiplatform/config"
	"github.com/richie-woo-berkeley/Sheets-C6-Multiplatform/internal/c6"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [cf-file]",
	Short: "Simulate a construction file and print each step's product",
	Long: `Simulate a construction file and print each step's product.

A construction file is an ordered plan of cloning steps (PCR, Digest,
GoldenGate, Gibson, Ligate, Transform, Blunt) plus the named sequences the
steps start from, e.g.:

  PCR P6libF P6libR on pTP1, P6
  Assemble P6 BsaI, pP6
  P6libF  gacttGAATTCgcggccgctTCTAGAg...
  P6libR  catcaACTAGTa...
  plasmid pTP1 tccctatcagtgataga...

Every step's predicted product sequence is printed in file order.`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func runRun(cmd *cobra.Command, args []string) {
	conf := config.New()

	text, err := os.ReadFile(args[0])
	if err != nil {
		stderr.Fatalf("failed to read %s: %v", args[0], err)
	}

	cf := c6.Parse(string(text))
	if len(cf.Steps) == 0 {
		stderr.Fatalf("no construction steps found in %s", args[0])
	}

	products, err := c6.Execute(cf, c6.Settings{
		AnnealLength:   conf.Sim.AnnealLength,
		HomologyLength: conf.Sim.HomologyLength,
	})
	if err != nil {
		stderr.Fatalf("failed to simulate %s: %v", args[0], err)
	}

	if conf.Output.JSON {
		b, err := json.MarshalIndent(products, "", "  ")
		if err != nil {
			stderr.Fatalf("failed to write products: %v", err)
		}
		fmt.Println(string(b))
		return
	}

	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	for _, product := range products {
		topology := "linear"
		if product.IsCircular {
			topology = "circular"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", product.Name, topology, product.Sequence)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "write products as JSON")
	runCmd.Flags().Int("anneal-length", 18, "number of 3' primer bases used as a PCR annealing anchor")
	runCmd.Flags().Int("homology-length", 20, "homology-arm length used by Gibson assembly")

	viper.BindPFlag("json", runCmd.Flags().Lookup("json"))
	viper.BindPFlag("anneal-length", runCmd.Flags().Lookup("anneal-length"))
	viper.BindPFlag("homology-length", runCmd.Flags().Lookup("homology-length"))
}
