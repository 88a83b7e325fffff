package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statementMime string

var statementCmd = &cobra.Command{
	Use:   "statement <file>",
	Short: "Extract a financial statement from a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		buf, err := os.ReadFile(path)
		if err != nil {
			return eris.Wrap(err, "read input file")
		}

		mimeType := statementMime
		if mimeType == "" {
			mimeType = mimeForFile(path)
		}

		p, err := newPipeline()
		if err != nil {
			return err
		}

		stmt, err := p.ParseStatement(cmd.Context(), buf, mimeType)
		if err != nil {
			return err
		}

		zap.L().Info("statement parsed",
			zap.String("file", path),
			zap.String("type", string(stmt.StatementType)),
			zap.Int("confidence", stmt.Confidence),
			zap.String("source", string(stmt.Source)),
		)

		out, err := json.MarshalIndent(stmt, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal result")
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	statementCmd.Flags().StringVar(&statementMime, "mime", "", "input MIME type (default inferred from extension)")
	rootCmd.AddCommand(statementCmd)
}
