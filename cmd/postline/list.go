package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's recent posts",
	Long:  `List the authenticated account's most recent posts, newest first.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "Maximum number of posts to list")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	m, _, err := newManager()
	if err != nil {
		return err
	}

	refs := m.RecentPosts(context.Background(), listLimit)
	if len(refs) == 0 {
		fmt.Println("No recent posts found.")
		return nil
	}

	for _, ref := range refs {
		fmt.Printf("%s\t%s\n", ref.ID, ref.Title)
	}
	return nil
}
