package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <post-id>",
	Short: "Read a post",
	Long:  `Fetch the current state of a post by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	m, _, err := newManager()
	if err != nil {
		return err
	}

	post := m.ReadPost(context.Background(), args[0])
	if post == nil {
		return fmt.Errorf("failed to fetch the post")
	}

	fmt.Printf("ID:        %s\n", post.ID)
	fmt.Printf("Title:     %s\n", post.Title)
	fmt.Printf("Content:   %s\n", post.Body)
	fmt.Printf("Subreddit: %s\n", post.Subreddit)
	fmt.Printf("Author:    %s\n", post.Author)
	fmt.Printf("Score:     %d\n", post.Score)
	fmt.Printf("Comments:  %d\n", post.CommentCount)
	fmt.Printf("URL:       %s\n", post.URL)
	fmt.Printf("Created:   %s\n", post.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
