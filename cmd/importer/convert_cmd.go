package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

type convertOptions struct {
	headerOptions
	OutPath string
}

func newConvertCmd() *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert [flags] <Entity>.xlsx...",
		Short: "Convert workbooks into an upload batch JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("at least one workbook is required")
			}
			if err := opts.validate(); err != nil {
				return err
			}
			batch, err := buildBatch(opts.Header, args)
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if opts.OutPath != "" && opts.OutPath != "-" {
				f, err := os.Create(opts.OutPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(batch)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVar(&opts.OutPath, "out", "-", "output path, - for stdout")
	return cmd
}
