package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukepuplett/evoq-blockchain-sub000/application"
	"github.com/lukepuplett/evoq-blockchain-sub000/merkletree"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a Merkle exchange document.",
	Long: `Verify a Merkle exchange document.

The document's leaves are rehashed and the recomputed Merkle root
is compared against the stated root. With --sealed the producer
seal is checked first.`,
	Run: verifyRunFunc,
}

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringP("in", "i", "document.json", "Path to the document to verify")
	verifyCmd.Flags().BoolP("sealed", "s", false, "Treat the input as a sealed document")
}

func verifyRunFunc(cmd *cobra.Command, args []string) {
	in := cmd.Flag("in").Value.String()
	sealed, _ := strconv.ParseBool(cmd.Flag("sealed").Value.String())

	var m *merkletree.MerkleTree
	var err error
	if sealed {
		var sd *application.SealedDocument
		if sd, err = application.UnmarshalSealedFromFile(in); err == nil {
			m, err = application.VerifySealedDocument(sd)
		}
	} else {
		m, err = application.UnmarshalTreeFromFile(in)
	}
	if err != nil {
		log.Fatal(err)
	}

	ok, err := m.VerifyRoot()
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		fmt.Println("FAIL: root does not match the leaves")
		os.Exit(1)
	}
	fmt.Println("OK")
}
