package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Invoice number series",
}

var numberPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the number the next finalized invoice will receive",
	Args:  cobra.NoArgs,
	RunE: withRuntime(func(cmd *cobra.Command, _ []string, rt *runtime) error {
		n, err := rt.svcs.Settings.NumberPreview(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	}),
}

func init() {
	numberCmd.AddCommand(numberPreviewCmd)
	rootCmd.AddCommand(numberCmd)
}
