package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lafaom-mao/portal/internal/catalog"
	"github.com/lafaom-mao/portal/internal/clients/lafaom"
	"github.com/lafaom-mao/portal/internal/entities"
	"github.com/lafaom-mao/portal/internal/store"
	"github.com/spf13/cobra"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "List published news articles",
	RunE:  runNews,
}

var newsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one article in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runNewsShow,
}

var (
	newsPage     int
	newsCategory string
)

func init() {
	newsCmd.Flags().IntVar(&newsPage, "page", 1, "Page to display")
	newsCmd.Flags().StringVar(&newsCategory, "category", "", "Only articles of this category")

	newsCmd.AddCommand(newsShowCmd)
	rootCmd.AddCommand(newsCmd)
}

func runNews(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	snapshots, err := a.openDb()
	if err != nil {
		return err
	}

	list := catalog.NewListWithSnapshots(store.CollectionNews,
		func(ctx context.Context, page int) (*lafaom.Page[entities.BlogPost], error) {
			return a.client.BlogPosts(ctx, lafaom.PageParams{Page: page})
		},
		snapshots,
		func(p entities.BlogPost) string { return p.ID })

	if err := list.Load(cmd.Context(), newsPage); err != nil {
		return err
	}

	if newsCategory != "" {
		list.Filter(func(p entities.BlogPost) bool {
			return catalog.MatchesExact(newsCategory, p.Category)
		})
	}

	list.Render(os.Stdout, renderNewsCard)
	return nil
}

func runNewsShow(cmd *cobra.Command, args []string) error {

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	post, err := a.client.BlogPost(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	w := os.Stdout
	fmt.Fprintf(w, "%s  [%s]\n", post.Title, post.Category)
	if !post.PublishedAt.IsZero() {
		fmt.Fprintf(w, "published %s\n", post.PublishedAt.Format(time.DateOnly))
	}
	fmt.Fprintf(w, "\n%s\n", catalog.StripHTML(post.Content))
	return nil
}

func renderNewsCard(w io.Writer, post entities.BlogPost) {
	fmt.Fprintf(w, "%s  [%s]\n", post.Title, post.Category)
	fmt.Fprintf(w, "    %s\n", catalog.Truncate(catalog.StripHTML(post.Content), 120))
	if !post.PublishedAt.IsZero() {
		fmt.Fprintf(w, "    published %s  (id %s)\n", post.PublishedAt.Format(time.DateOnly), post.ID)
	} else {
		fmt.Fprintf(w, "    (id %s)\n", post.ID)
	}
}
