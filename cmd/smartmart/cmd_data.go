package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartmart/pos-backend/internal/config"
	"github.com/smartmart/pos-backend/internal/modules/accounts"
	"github.com/smartmart/pos-backend/internal/modules/catalog"
	"github.com/smartmart/pos-backend/internal/modules/sales"
	"github.com/smartmart/pos-backend/internal/store"
)

var dataDir string

// openStore resolves the data directory (flag, then env config) and opens it.
func openStore() (*store.Store, error) {
	dir := dataDir
	if dir == "" {
		dir = config.Load(config.NewLogger()).DataDir
	}
	return store.Open(dir)
}

// smartmart seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset the data directory to the sample data set",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		if err := st.Seed(); err != nil {
			return err
		}
		fmt.Println("Sample data has been initialized successfully!")
		return nil
	},
}

// smartmart sales
var salesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Print the sales log",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		records, err := sales.NewFileRepository(st).List(context.Background())
		if err != nil {
			return err
		}
		var total float64
		for _, rec := range records {
			fmt.Printf("%s  $%.2f\n", rec.At.Format("2006-01-02 15:04:05"), rec.Total)
			total += rec.Total
		}
		fmt.Printf("%d sales, $%.2f total\n", len(records), total)
		return nil
	},
}

// smartmart cashiers
var cashiersCmd = &cobra.Command{
	Use:   "cashiers",
	Short: "List cashier accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		names, err := accounts.NewService(accounts.NewFileRepository(st)).ListCashiers(context.Background())
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

// smartmart products
var productsCmd = &cobra.Command{
	Use:   "products [category]",
	Short: "List catalog products, optionally filtered by category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		category := ""
		if len(args) == 1 {
			category = args[0]
		}
		products, err := catalog.NewFileRepository(st).List(context.Background(), category)
		if err != nil {
			return err
		}
		for _, p := range products {
			fmt.Printf("%-6s %-15s %-15s $%8.2f  x%d\n", p.ID, p.Name, p.Category, p.Price, p.Quantity)
		}
		return nil
	},
}
