package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/lukepuplett/evoq-blockchain-sub000/application"
	"github.com/lukepuplett/evoq-blockchain-sub000/merkletree"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the visible fields of a Merkle exchange document.",
	Long: `Show the visible fields of a Merkle exchange document.

The document is verified, its visible fields are merged into a
single JSON object and printed, and the number of redacted
fields is reported.`,
	Run: showRunFunc,
}

func init() {
	RootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("in", "i", "document.json", "Path to the document to show")
}

func showRunFunc(cmd *cobra.Command, args []string) {
	in := cmd.Flag("in").Value.String()
	m, err := application.UnmarshalTreeFromFile(in)
	if err != nil {
		log.Fatal(err)
	}

	visible, err := merkletree.GetObject[map[string]json.RawMessage](m, true)
	if err != nil {
		log.Fatal(err)
	}
	buf, err := json.MarshalIndent(visible, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(buf))

	private := 0
	for i := range m.Leaves {
		if m.Leaves[i].IsPrivate() {
			private++
		}
	}
	if private > 0 {
		fmt.Printf("(%d redacted field(s))\n", private)
	}
}
