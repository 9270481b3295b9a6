package cli

import (
	"github.com/avc/smsrent/internal/domain"
	"github.com/spf13/cobra"
)

func newCountriesCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List countries with their operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, err := st.core.Catalog.ListCountries(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), countries)
		},
	}
}

func newOperatorsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "operators <country>",
		Short: "List operators of a country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			operators, err := st.core.Catalog.ListOperators(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), operators)
		},
	}
}

func newProductsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "products <country> <operator>",
		Short: "List products available for a country and operator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := st.core.Catalog.ListProducts(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), products)
		},
	}
}

func newPricesCmd(st *state) *cobra.Command {
	var country, product string

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "List prices, optionally filtered by country and product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				prices domain.Payload
				err    error
			)
			catalog := st.core.Catalog
			switch {
			case cmd.Flags().Changed("country") && cmd.Flags().Changed("product"):
				prices, err = catalog.ListPricesByCountryAndProduct(cmd.Context(), country, product)
			case cmd.Flags().Changed("country"):
				prices, err = catalog.ListPricesByCountry(cmd.Context(), country)
			case cmd.Flags().Changed("product"):
				prices, err = catalog.ListPricesByProduct(cmd.Context(), product)
			default:
				prices, err = catalog.ListPrices(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), prices)
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "filter by country")
	cmd.Flags().StringVar(&product, "product", "", "filter by product")
	return cmd
}
