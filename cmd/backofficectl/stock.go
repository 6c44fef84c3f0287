package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/internal/service/product"
	"github.com/heartmarshall/franken-backoffice/internal/service/stock"
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Adjust and verify product stock",
}

var stockAdjustCmd = &cobra.Command{
	Use:   "adjust [product-id]",
	Short: "Record a manual stock movement",
	Long: `Record a manual stock movement for one product.

Allowed reasons are PURCHASE, CORRECTION and STOCK_TAKE. Sales and reversals
are produced only by finalizing or cancelling invoices.`,
	Example: `  # Goods received
  backofficectl stock adjust 3f0c... --qty 50 --reason PURCHASE --ref "LS-2025-114"

  # Breakage
  backofficectl stock adjust 3f0c... --qty -2 --reason CORRECTION --ref "Bruch"`,
	Args: cobra.ExactArgs(1),
	RunE: withRuntime(runStockAdjust),
}

var stockVerifyCmd = &cobra.Command{
	Use:   "verify [product-id...]",
	Short: "Compare stock counters with the movement ledger",
	Long: `Compare each product's stock counter with the sum of its movements.
Without arguments every product is checked. Exits non-zero on any mismatch.`,
	RunE: withRuntime(runStockVerify),
}

func init() {
	stockAdjustCmd.Flags().Int("qty", 0, "signed quantity (positive adds stock) [REQUIRED]")
	stockAdjustCmd.Flags().String("reason", string(domain.StockReasonCorrection), "movement reason")
	stockAdjustCmd.Flags().String("ref", "", "free-text reference")
	_ = stockAdjustCmd.MarkFlagRequired("qty")

	stockCmd.AddCommand(stockAdjustCmd, stockVerifyCmd)
	rootCmd.AddCommand(stockCmd)
}

func runStockAdjust(cmd *cobra.Command, args []string, rt *runtime) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}
	qty, _ := cmd.Flags().GetInt("qty")
	reason, _ := cmd.Flags().GetString("reason")
	ref, _ := cmd.Flags().GetString("ref")

	in := stock.AdjustStockInput{
		ProductID: id,
		Quantity:  qty,
		Reason:    domain.StockReason(strings.ToUpper(reason)),
	}
	if ref != "" {
		in.Reference = &ref
	}

	p, err := rt.svcs.Stock.AdjustStock(cmd.Context(), in)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: stock now %d\n", p.Name, p.StockCurrent)
	return nil
}

func runStockVerify(cmd *cobra.Command, args []string, rt *runtime) error {
	ctx := cmd.Context()

	ids := make([]uuid.UUID, 0, len(args))
	for _, a := range args {
		id, err := uuid.Parse(a)
		if err != nil {
			return fmt.Errorf("invalid product id %q", a)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		for offset := 0; ; offset += product.MaxListLimit {
			page, err := rt.svcs.Product.ListProducts(ctx, product.ListProductsInput{
				Limit:  product.MaxListLimit,
				Offset: offset,
			})
			if err != nil {
				return err
			}
			for _, p := range page {
				ids = append(ids, p.ID)
			}
			if len(page) < product.MaxListLimit {
				break
			}
		}
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tCOUNTER\tLEDGER\tOK")
	mismatches := 0
	for _, id := range ids {
		check, err := rt.svcs.Stock.VerifyLedger(ctx, id)
		if err != nil {
			return err
		}
		ok := "yes"
		if !check.Consistent() {
			ok = "NO"
			mismatches++
			rt.log.WarnContext(ctx, "stock ledger mismatch",
				"product_id", id.String(),
				"stock_current", check.StockCurrent,
				"movement_sum", check.MovementSum,
			)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", check.ProductName, check.StockCurrent, check.MovementSum, ok)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if mismatches > 0 {
		return fmt.Errorf("%d of %d products disagree with their ledger", mismatches, len(ids))
	}
	return nil
}
