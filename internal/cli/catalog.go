package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/avickers/phonescout/internal/api"
	"github.com/avickers/phonescout/internal/config"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the phone catalog",
	}

	cmd.AddCommand(newCatalogAddCmd())
	return cmd
}

func newCatalogAddCmd() *cobra.Command {
	var (
		serverURL string
		brand     string
		model     string
		year      int
		price     float64
		storage   string
		battery   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a phone to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.Server.BaseURL = serverURL
			}

			client := api.NewHTTPClient(cfg.Server.BaseURL, cfg.Server.Timeout())

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			phone, err := client.AddCellphone(ctx, api.CellPhoneCreate{
				Brand:       brand,
				Model:       model,
				Year:        year,
				Price:       price,
				Storage:     storage,
				BatteryLife: battery,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (id %d)\n", phone.Brand, phone.Model, phone.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "backend base URL (overrides config)")
	cmd.Flags().StringVar(&brand, "brand", "", "phone brand")
	cmd.Flags().StringVar(&model, "model", "", "phone model")
	cmd.Flags().IntVar(&year, "year", 0, "release year")
	cmd.Flags().Float64Var(&price, "price", 0, "price in USD")
	cmd.Flags().StringVar(&storage, "storage", "", "storage capacity, e.g. 128GB")
	cmd.Flags().StringVar(&battery, "battery", "", "battery life, e.g. 20h")
	_ = cmd.MarkFlagRequired("brand")
	_ = cmd.MarkFlagRequired("model")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}
