package main

import (
	"github.com/spf13/cobra"

	"github.com/leo60228/const-regex/pkg/constregex"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <pattern>",
		Short: "Print the state graph a pattern compiles to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := constregex.Inspect(args[0])
			if err != nil {
				return err
			}
			cmd.Print(report.String())
			return nil
		},
	}
}
