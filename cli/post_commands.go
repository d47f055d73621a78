package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/otonaba/otonaba-cli/comments"
	"github.com/otonaba/otonaba-cli/likes"
	"github.com/otonaba/otonaba-cli/posts"
)

func newPostsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Browse and manage board posts",
	}
	cmd.AddCommand(
		newPostsListCmd(app),
		newPostsShowCmd(app),
		newPostsCreateCmd(app),
		newPostsEditCmd(app),
		newPostsDeleteCmd(app),
	)
	return cmd
}

func newPostsListCmd(app *App) *cobra.Command {
	var params posts.ListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts, optionally filtered by category or search term",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if params.Limit == 0 {
				params.Limit = app.Config.PageLimit
			}
			resp, err := posts.List(cmd.Context(), app.Client, params)
			if err != nil {
				return err
			}
			renderPostList(app.Out, resp)
			return nil
		},
	}
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "posts per page (default from config)")
	cmd.Flags().StringVar(&params.Category, "category", "", "filter by category")
	cmd.Flags().StringVar(&params.Search, "search", "", "search term")
	return cmd
}

func newPostsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <post-id>",
		Short: "Show a post with its comments and like state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "post")
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			// The post, its comments, and the viewer's like state are
			// independent fetches writing disjoint results, so they run
			// concurrently. The like check only applies to a signed-in viewer.
			var (
				wg         sync.WaitGroup
				post       *posts.Post
				postErr    error
				cmts       []comments.Comment
				cmtsErr    error
				likeStatus *likes.Status
			)

			wg.Add(2)
			go func() {
				defer wg.Done()
				post, postErr = posts.Get(ctx, app.Client, id)
			}()
			go func() {
				defer wg.Done()
				cmts, cmtsErr = comments.ListByPost(ctx, app.Client, id)
			}()
			if app.Store.IsAuthenticated() {
				wg.Add(1)
				go func() {
					defer wg.Done()
					status, err := likes.Check(ctx, app.Client, id)
					if err != nil {
						app.Logger.Debug().Err(err).Msg("like check failed")
						return
					}
					likeStatus = status
				}()
			}
			wg.Wait()

			if postErr != nil {
				return postErr
			}
			renderPost(app.Out, post)
			if likeStatus != nil && likeStatus.IsLiked {
				fmt.Fprintln(app.Out, "\n♥ you like this post")
			}
			if cmtsErr != nil {
				return cmtsErr
			}
			renderComments(app.Out, cmts)
			return nil
		},
	}
}

func newPostsCreateCmd(app *App) *cobra.Command {
	var (
		title, content, category string
		imageSpecs               []string
	)

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Publish a new post",
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, _ []string) error {
			images, err := parseImageSpecs(imageSpecs)
			if err != nil {
				return err
			}
			post, err := posts.Create(cmd.Context(), app.Client, title, content, category, images)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Post #%d published.\n", post.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post body")
	cmd.Flags().StringVar(&category, "category", "", "post category")
	cmd.Flags().StringArrayVar(&imageSpecs, "image", nil,
		"attached image as <cloudinary-id>=<url> (from `otonaba upload add`), repeatable")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newPostsEditCmd(app *App) *cobra.Command {
	var title, content, category string

	cmd := &cobra.Command{
		Use:     "edit <post-id>",
		Short:   "Rewrite a post's title, body and category",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "post")
			if err != nil {
				return err
			}

			// Unset flags keep the post's current values.
			if title == "" || content == "" || category == "" {
				current, err := posts.Get(cmd.Context(), app.Client, id)
				if err != nil {
					return err
				}
				if title == "" {
					title = current.Title
				}
				if content == "" {
					content = current.Content
				}
				if category == "" {
					category = current.Category
				}
			}

			post, err := posts.Update(cmd.Context(), app.Client, id, title, content, category)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Post #%d updated.\n", post.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post body")
	cmd.Flags().StringVar(&category, "category", "", "post category")
	return cmd
}

func newPostsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <post-id>",
		Short:   "Delete a post",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "post")
			if err != nil {
				return err
			}
			if err := posts.Delete(cmd.Context(), app.Client, id); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Post #%d deleted.\n", id)
			return nil
		},
	}
}

func parseImageSpecs(specs []string) ([]posts.NewImage, error) {
	images := make([]posts.NewImage, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid image spec %q, want <cloudinary-id>=<url>", spec)
		}
		images = append(images, posts.NewImage{CloudinaryID: parts[0], URL: parts[1]})
	}
	return images, nil
}
