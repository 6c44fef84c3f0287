package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data to spreadsheets",
}

var exportXLSXCmd = &cobra.Command{
	Use:   "xlsx",
	Short: "Export invoices and their items to an Excel workbook",
	Example: `  # Everything
  backofficectl export xlsx -o rechnungen.xlsx

  # Only paid invoices of one customer
  backofficectl export xlsx --status PAID --customer 5d2a...`,
	Args: cobra.NoArgs,
	RunE: withRuntime(runExportXLSX),
}

func init() {
	exportXLSXCmd.Flags().StringP("out", "o", "rechnungen.xlsx", "output file")
	exportXLSXCmd.Flags().String("status", "", "filter by status (DRAFT, SENT, PAID, CANCELLED)")
	exportXLSXCmd.Flags().String("customer", "", "filter by customer id")
	exportXLSXCmd.Flags().String("search", "", "filter by invoice number")

	exportCmd.AddCommand(exportXLSXCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportXLSX(cmd *cobra.Command, _ []string, rt *runtime) error {
	out, _ := cmd.Flags().GetString("out")
	status, _ := cmd.Flags().GetString("status")
	customerID, _ := cmd.Flags().GetString("customer")
	search, _ := cmd.Flags().GetString("search")

	filter := domain.InvoiceFilter{Search: search}
	if status != "" {
		s := domain.InvoiceStatus(strings.ToUpper(status))
		if !s.IsValid() {
			return fmt.Errorf("invalid status %q", status)
		}
		filter.Status = &s
	}
	if customerID != "" {
		id, err := uuid.Parse(customerID)
		if err != nil {
			return fmt.Errorf("invalid customer id %q", customerID)
		}
		filter.CustomerID = &id
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	n, err := rt.svcs.Export.WriteInvoices(cmd.Context(), filter, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(out)
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d invoices to %s\n", n, out)
	return nil
}
