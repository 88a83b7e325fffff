package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var productsMime string

var productsCmd = &cobra.Command{
	Use:   "products <file>",
	Short: "Extract an itemized product list from a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		buf, err := os.ReadFile(path)
		if err != nil {
			return eris.Wrap(err, "read input file")
		}

		mimeType := productsMime
		if mimeType == "" {
			mimeType = mimeForFile(path)
		}

		p, err := newPipeline()
		if err != nil {
			return err
		}

		list, err := p.ParseProducts(cmd.Context(), buf, mimeType)
		if err != nil {
			return err
		}

		zap.L().Info("products parsed",
			zap.String("file", path),
			zap.Int("count", len(list.Products)),
			zap.Int("confidence", list.Confidence),
		)

		out, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	productsCmd.Flags().StringVar(&productsMime, "mime", "", "input MIME type (default inferred from extension)")
	rootCmd.AddCommand(productsCmd)
}
