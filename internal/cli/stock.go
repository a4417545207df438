package cli

import (
	inventoryv1 "github.com/abgdnv/bakery-inventory/pkg/api/gen/go/inventory/v1"
	"github.com/spf13/cobra"
)

func newStockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stock <id>",
		Short: "Show the quantity on hand",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := a.client.GetStock(cmd.Context(), &inventoryv1.GetStockRequest{Id: id})
			if err != nil {
				return callError(err)
			}
			return a.print(cmd.OutOrStdout(), stockView{ID: resp.GetId(), Quantity: resp.GetQuantity()})
		}),
	}
}

func newAddStockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-stock <id> <amount>",
		Short: "Receive units of a product",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			req, err := stockRequest(args)
			if err != nil {
				return err
			}
			resp, err := a.client.AddQuantity(cmd.Context(), req)
			if err != nil {
				return callError(err)
			}
			return a.print(cmd.OutOrStdout(), toProductView(resp.GetProduct()))
		}),
	}
}

func newOffloadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "offload <id> <amount>",
		Short: "Take units of a product out of stock",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			req, err := stockRequest(args)
			if err != nil {
				return err
			}
			resp, err := a.client.OffloadQuantity(cmd.Context(), req)
			if err != nil {
				return callError(err)
			}
			return a.print(cmd.OutOrStdout(), toProductView(resp.GetProduct()))
		}),
	}
}

func stockRequest(args []string) (*inventoryv1.StockRequest, error) {
	id, err := parseID(args[0])
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount(args[1])
	if err != nil {
		return nil, err
	}
	return &inventoryv1.StockRequest{Id: id, Amount: amount}, nil
}
