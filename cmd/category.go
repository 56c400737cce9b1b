package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"envelope/internal/client"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage budget categories",
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		created, err := c.CreateCategory(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Category created: %s\n", created.Name)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		cats, err := c.ListCategories(context.Background())
		if err != nil {
			return err
		}

		if len(cats) == 0 {
			fmt.Println("No categories found.")
			return nil
		}

		fmt.Printf("%-25s %12s\n", "NAME", "BALANCE")
		fmt.Printf("%-25s %12s\n", "----", "-------")
		var total float64
		for _, cat := range cats {
			fmt.Printf("%-25s %12.2f\n", cat.Name, cat.Balance)
			total += cat.Balance
		}
		fmt.Printf("%-25s %12.2f\n", "TOTAL", total)
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a category and its transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		if err := c.DeleteCategory(context.Background(), args[0]); err != nil {
			return err
		}

		fmt.Printf("Category deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	categoryCmd.AddCommand(categoryCreateCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)

	rootCmd.AddCommand(categoryCmd)
}
