package cli

import (
	"fmt"

	inventoryv1 "github.com/abgdnv/bakery-inventory/pkg/api/gen/go/inventory/v1"
	"github.com/spf13/cobra"
)

type productFlags struct {
	name     string
	quantity uint32
	category string
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().Uint32Var(&f.quantity, "quantity", 0, "units on hand")
	cmd.Flags().StringVar(&f.category, "category", "", "one of Cake, Cookies, Bakery")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("category")
}

func newAddCmd(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new product",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			category, err := parseCategory(f.category)
			if err != nil {
				return err
			}
			resp, err := a.client.AddProduct(cmd.Context(), &inventoryv1.AddProductRequest{
				Name:     f.name,
				Category: category,
				Quantity: f.quantity,
			})
			if err != nil {
				return callError(err)
			}
			return a.print(cmd.OutOrStdout(), toProductView(resp.GetProduct()))
		}),
	}
	f.register(cmd)
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := a.client.GetProduct(cmd.Context(), &inventoryv1.GetProductRequest{Id: id})
			if err != nil {
				return callError(err)
			}
			return a.print(cmd.OutOrStdout(), toProductView(resp.GetProduct()))
		}),
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every product",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.ListAllProducts(cmd.Context(), &inventoryv1.ListAllProductsRequest{})
			if err != nil {
				return callError(err)
			}
			return a.printProducts(cmd, resp)
		}),
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <category>",
		Short: "List the products of a category",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			category, err := parseCategory(args[0])
			if err != nil {
				return err
			}
			resp, err := a.client.SearchByCategory(cmd.Context(), &inventoryv1.SearchByCategoryRequest{Category: category})
			if err != nil {
				return callError(err)
			}
			return a.printProducts(cmd, resp)
		}),
	}
}

func newUpdateCmd(a *app) *cobra.Command {
	var f productFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the name, quantity and category of a product",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			category, err := parseCategory(f.category)
			if err != nil {
				return err
			}
			resp, err := a.client.UpdateProduct(cmd.Context(), &inventoryv1.UpdateProductRequest{
				Id:       id,
				Name:     f.name,
				Category: category,
				Quantity: f.quantity,
			})
			if err != nil {
				return callError(err)
			}
			return a.print(cmd.OutOrStdout(), toProductView(resp.GetProduct()))
		}),
	}
	f.register(cmd)
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := a.client.RemoveProduct(cmd.Context(), &inventoryv1.RemoveProductRequest{Id: id})
			if err != nil {
				return callError(err)
			}
			return a.print(cmd.OutOrStdout(), toProductView(resp.GetProduct()))
		}),
	}
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every product",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			if _, err := a.client.ClearAllProducts(cmd.Context(), &inventoryv1.ClearAllProductsRequest{}); err != nil {
				return callError(err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "All products removed")
			return err
		}),
	}
}

func (a *app) printProducts(cmd *cobra.Command, resp *inventoryv1.ProductsResponse) error {
	return a.print(cmd.OutOrStdout(), toProductViews(resp.GetProducts()))
}
