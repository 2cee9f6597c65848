package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <post-id> <new-content>",
	Short: "Update a post's body",
	Long:  `Replace the body of an existing post owned by the account.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	m, _, err := newManager()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if !m.UpdatePost(ctx, args[0], args[1]) {
		return fmt.Errorf("failed to update the post")
	}

	fmt.Println("Post updated successfully!")
	if post := m.ReadPost(ctx, args[0]); post != nil && post.Subreddit != "" {
		fmt.Printf("https://www.reddit.com/r/%s/comments/%s/\n", post.Subreddit, post.ID)
	}
	return nil
}
