package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Demivan/fluentnet/fluent/parser"
)

func newParseCmd() *cobra.Command {
	var withSpans bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an .ftl file and dump its AST as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read source")
			}

			var opts []parser.Option
			if withSpans {
				opts = append(opts, parser.WithSpans())
			}
			resource := parser.New(opts...).Parse(string(source))

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "    ")
			return errors.Wrap(encoder.Encode(resource), "encode AST")
		},
	}

	cmd.Flags().BoolVar(&withSpans, "spans", false, "attach byte spans to every AST node")

	return cmd
}
