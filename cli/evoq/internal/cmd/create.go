package cmd

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lukepuplett/evoq-blockchain-sub000/application"
	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers"
	"github.com/lukepuplett/evoq-blockchain-sub000/crypto/hashers/sha256"
	"github.com/lukepuplett/evoq-blockchain-sub000/merkletree"
	"github.com/lukepuplett/evoq-blockchain-sub000/utils"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a Merkle exchange document from a JSON object.",
	Long: `Create a Merkle exchange document from a JSON object.

Each top-level property of the object becomes a salted leaf and
the document is written with its Merkle root. The document may
also be sealed with the configured sealing key and recorded in
the configured document store.`,
	Run: createRunFunc,
}

func init() {
	RootCmd.AddCommand(createCmd)
	createCmd.Flags().StringP("config", "c", "config.toml", "Path to the evoq configuration file")
	createCmd.Flags().StringP("in", "i", "", "Path to the JSON object to build the document from")
	createCmd.Flags().StringP("out", "o", "document.json", "Path to write the exchange document to")
	createCmd.Flags().StringP("type", "t", "exchange-document", "Document type recorded in the header leaf")
	createCmd.Flags().BoolP("seal", "s", false, "Seal the document with the configured sealing key")
	createCmd.Flags().Bool("store", false, "Record the document in the configured document store")
}

func createRunFunc(cmd *cobra.Command, args []string) {
	conf, err := loadConfig(cmd)
	if err != nil {
		log.Fatal(err)
	}
	logger := newLogger(conf)

	in := cmd.Flag("in").Value.String()
	buf, err := os.ReadFile(in)
	if err != nil {
		log.Fatalf("Cannot read input object: %v", err)
	}
	var values map[string]interface{}
	if err := json.Unmarshal(buf, &values); err != nil {
		log.Fatalf("Input must be a JSON object: %v", err)
	}

	hasher, err := hashers.NewExchangeHasher(sha256.SHA256)
	if err != nil {
		log.Fatal(err)
	}

	var m *merkletree.MerkleTree
	if conf.DefaultVersion == merkletree.V3 {
		m = merkletree.NewExchangeTree(cmd.Flag("type").Value.String())
	} else {
		m = merkletree.NewMerkleTree(conf.DefaultVersion)
	}
	if err := m.AddJSONLeaves(values, hasher); err != nil {
		log.Fatal(err)
	}
	root, err := m.RecomputeRoot(hasher)
	if err != nil {
		log.Fatal(err)
	}

	out := cmd.Flag("out").Value.String()
	seal, _ := strconv.ParseBool(cmd.Flag("seal").Value.String())
	if seal {
		if err := sealToFile(conf, m, out); err != nil {
			log.Fatal(err)
		}
	} else if err := application.MarshalTreeToFile(m, out); err != nil {
		log.Fatal(err)
	}

	store, _ := strconv.ParseBool(cmd.Flag("store").Value.String())
	if store {
		if err := storeDocument(conf, m); err != nil {
			log.Fatal(err)
		}
	}
	logger.Info("Created document", "path", out, "root", utils.EncodeHex(root))
}

func sealToFile(conf *application.ToolConfig, m *merkletree.MerkleTree, out string) error {
	sk, err := application.LoadSealingKey(conf.SealingKeyPath, conf.GetPath())
	if err != nil {
		return err
	}
	doc, err := merkletree.Marshal(m)
	if err != nil {
		return err
	}
	sd, err := application.SealDocument(sk, doc)
	if err != nil {
		return err
	}
	return application.MarshalSealedToFile(sd, out)
}

func storeDocument(conf *application.ToolConfig, m *merkletree.MerkleTree) error {
	store, err := openStore(conf)
	if err != nil {
		return err
	}
	doc, err := merkletree.Marshal(m)
	if err != nil {
		return err
	}
	_, err = store.Put(doc)
	return err
}
