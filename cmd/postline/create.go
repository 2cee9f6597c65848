package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createSubreddit string
	createTitle     string
	createKind      string
)

var createCmd = &cobra.Command{
	Use:   "create [content]",
	Short: "Create a post",
	Long: `Create a new post. The content argument is the post body for
text posts, the URL for link posts, and a local file path for image
posts.

Examples:
  postline create --subreddit test --title "Hello" "Hi there"
  postline create --subreddit test --title "A link" --kind link https://example.com
  postline create --subreddit pics --title "A cat" --kind image ./cat.png`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createSubreddit, "subreddit", "s", "", "Subreddit to post to (without 'r/')")
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Post title")
	createCmd.Flags().StringVarP(&createKind, "kind", "k", "text", "Post kind: text, link, or image")
	createCmd.MarkFlagRequired("subreddit")
	createCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	m, _, err := newManager()
	if err != nil {
		return err
	}

	content := ""
	if len(args) > 0 {
		content = args[0]
	}

	id, ok := m.CreatePost(context.Background(), createSubreddit, createTitle, content, createKind)
	if !ok {
		return fmt.Errorf("failed to create the post")
	}

	fmt.Printf("Post created successfully! Post ID: %s\n", id)
	fmt.Printf("https://www.reddit.com/r/%s/comments/%s/\n", createSubreddit, id)
	return nil
}
