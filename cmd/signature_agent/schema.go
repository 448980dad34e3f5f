package main

import (
	"fmt"
	"io"

	"github.com/jonathan/signature-customizer/internal/schemas"
	"github.com/spf13/cobra"
)

var schemaNames = map[string]string{
	"signature": schemas.Signature,
	"document":  schemas.Document,
}

var schemaCmd = &cobra.Command{
	Use:       "schema [signature|document]",
	Short:     "Print an embedded JSON schema",
	Long:      "Prints the JSON schema used to check the structure of signatures (default) or document envelopes.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"signature", "document"},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "signature"
		if len(args) == 1 {
			name = args[0]
		}
		return printSchema(name, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func printSchema(name string, stdout io.Writer) error {
	file, ok := schemaNames[name]
	if !ok {
		return fmt.Errorf("unknown schema %q (expected signature or document)", name)
	}
	content, err := schemas.Schema(file)
	if err != nil {
		return err
	}
	_, err = stdout.Write(content)
	return err
}
