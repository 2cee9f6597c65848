package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Long:  `Delete a post owned by the account.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	m, _, err := newManager()
	if err != nil {
		return err
	}

	if !m.DeletePost(context.Background(), args[0]) {
		return fmt.Errorf("failed to delete the post")
	}

	fmt.Println("Post deleted successfully!")
	return nil
}
