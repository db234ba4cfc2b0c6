package main

import (
	"github.com/spf13/cobra"

	"github.com/leo60228/const-regex/pkg/constregex"
)

func newGenerateCmd() *cobra.Command {
	opts := constregex.Options{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a matcher for a pattern and write it to a file",
		Example: `  constregex generate --pattern "^(meta-)*regex matching" --name Meta \
      --package matchers --out matchers/meta.go --test-input "meta-meta-regex matching"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return constregex.Compile(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Pattern, "pattern", "", "regular expression to compile (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "prefix for generated function names (required)")
	cmd.Flags().StringVar(&opts.OutputFile, "out", "", "output file path (required)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name for the generated code (required)")
	cmd.Flags().StringArrayVar(&opts.TestFileInputs, "test-input", nil, "input for the generated test file (repeatable)")
	cmd.Flags().BoolVar(&opts.Verbose, "verbose", false, "log generation decisions to stderr")

	for _, flag := range []string{"pattern", "name", "out", "package"} {
		cobra.CheckErr(cmd.MarkFlagRequired(flag))
	}

	return cmd
}
