package wikia

import "context"

// GetLatestActivity returns the latest activity on the wiki.
func (c *Client) GetLatestActivity(ctx context.Context, opts *ActivityOptions) (map[string]any, error) {
	return c.getActivity(ctx, "/Activity/LatestActivity", opts)
}

// GetRecentlyChangedArticles returns recently changed articles.
func (c *Client) GetRecentlyChangedArticles(ctx context.Context, opts *ActivityOptions) (map[string]any, error) {
	return c.getActivity(ctx, "/Activity/RecentlyChangedArticles", opts)
}

func (c *Client) getActivity(ctx context.Context, path string, opts *ActivityOptions) (map[string]any, error) {
	if opts == nil {
		opts = &ActivityOptions{}
	}

	params := newQuery()
	params.setInt("limit", opts.Limit)
	params.setInts("namespaces", opts.Namespaces)
	params.setBool("allowDuplicates", opts.AllowDuplicates)

	return c.getBody(ctx, path, params.Values)
}
