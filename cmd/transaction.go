package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"envelope/internal/client"
	"envelope/internal/ledger"
)

var txnDescription string

var depositCmd = &cobra.Command{
	Use:   "deposit [category] [amount]",
	Short: "Deposit money into a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addTransaction(args[0], args[1], ledger.TypeDeposit)
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw [category] [amount]",
	Short: "Withdraw money from a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addTransaction(args[0], args[1], ledger.TypeWithdraw)
	},
}

func addTransaction(category, rawAmount string, typ ledger.Type) error {
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", rawAmount, err)
	}

	c := client.New(flagServer)
	result, err := c.AddTransaction(context.Background(), category, amount, txnDescription, typ)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %.2f (%s)\n", result.Transaction.Type, amount, category)
	fmt.Printf("New balance: %.2f\n", result.Balance)
	return nil
}

var transferCmd = &cobra.Command{
	Use:   "transfer [from] [to] [amount]",
	Short: "Transfer money between categories",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[2], err)
		}

		c := client.New(flagServer)
		result, err := c.Transfer(context.Background(), args[0], args[1], amount)
		if err != nil {
			return err
		}

		fmt.Printf("Transferred %.2f from %s to %s\n", amount, args[0], args[1])
		fmt.Printf("%s balance: %.2f\n", args[0], result.FromBalance)
		fmt.Printf("%s balance: %.2f\n", args[1], result.ToBalance)
		return nil
	},
}

var txnListCategory string

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"txns"},
	Short:   "List transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		txns, err := c.ListTransactions(context.Background(), txnListCategory)
		if err != nil {
			return err
		}

		if len(txns) == 0 {
			fmt.Println("No transactions found.")
			return nil
		}

		fmt.Printf("%-17s %-20s %-13s %10s  %s\n", "DATE", "CATEGORY", "TYPE", "AMOUNT", "DESCRIPTION")
		fmt.Printf("%-17s %-20s %-13s %10s  %s\n", "----", "--------", "----", "------", "-----------")
		for _, t := range txns {
			desc := t.Description
			if len(desc) > 40 {
				desc = desc[:38] + ".."
			}
			fmt.Printf("%-17s %-20s %-13s %10.2f  %s\n",
				t.Date.Format("2006-01-02 15:04"),
				t.Category,
				t.Type,
				t.Amount,
				desc,
			)
		}
		return nil
	},
}

func init() {
	depositCmd.Flags().StringVar(&txnDescription, "description", "", "Transaction description")
	withdrawCmd.Flags().StringVar(&txnDescription, "description", "", "Transaction description")

	transactionsCmd.Flags().StringVar(&txnListCategory, "category", "", "Filter by category")

	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(transactionsCmd)
}
