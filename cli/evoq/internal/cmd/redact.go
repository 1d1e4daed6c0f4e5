package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/lukepuplett/evoq-blockchain-sub000/application"
	"github.com/lukepuplett/evoq-blockchain-sub000/merkletree"
)

// redactCmd represents the redact command
var redactCmd = &cobra.Command{
	Use:   "redact",
	Short: "Redact fields from a Merkle exchange document.",
	Long: `Redact fields from a Merkle exchange document.

Every field not named by --keep is replaced with its hash alone.
The document's Merkle root is unchanged, so the redacted copy
still verifies against the original root.`,
	Run: redactRunFunc,
}

func init() {
	RootCmd.AddCommand(redactCmd)
	redactCmd.Flags().StringP("in", "i", "document.json", "Path to the exchange document to redact")
	redactCmd.Flags().StringP("out", "o", "redacted.json", "Path to write the redacted document to")
	redactCmd.Flags().StringSliceP("keep", "k", nil, "Field names to keep visible")
}

func redactRunFunc(cmd *cobra.Command, args []string) {
	in := cmd.Flag("in").Value.String()
	m, err := application.UnmarshalTreeFromFile(in)
	if err != nil {
		log.Fatal(err)
	}

	keep, err := cmd.Flags().GetStringSlice("keep")
	if err != nil {
		log.Fatal(err)
	}
	redacted, err := merkletree.RedactTreeKeys(m, keep)
	if err != nil {
		log.Fatal(err)
	}

	out := cmd.Flag("out").Value.String()
	if err := application.MarshalTreeToFile(redacted, out); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s keeping %d field(s) visible", out, len(keep))
}
