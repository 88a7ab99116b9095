package wikia

import "context"

// GetWikisByString searches for wikis whose name or topic matches the
// given string.
func (c *Client) GetWikisByString(ctx context.Context, query string, opts *WikisByStringOptions) (map[string]any, error) {
	if opts == nil {
		opts = &WikisByStringOptions{}
	}

	params := newQuery()
	params.setAlways("string", query)
	params.set("hub", opts.Hub)
	params.set("lang", opts.Lang)
	params.setBool("includeDomain", opts.IncludeDomain)
	params.setFlag("expand", opts.Expand)
	params.setInt("batch", opts.Batch)
	params.setInt("limit", opts.Limit)

	return c.getBody(ctx, "/Wikis/ByString", params.Values)
}

// GetWikiDetails returns details about the wikis with the given ids.
// Only the items of the response body are returned.
func (c *Client) GetWikiDetails(ctx context.Context, ids []int, opts *WikiDetailsOptions) (any, error) {
	if opts == nil {
		opts = &WikiDetailsOptions{}
	}

	params := newQuery()
	params.setAlways("ids", joinInts(ids))
	params.setInt("height", opts.Height)
	params.setInt("width", opts.Width)
	params.setInt("snippet", opts.Snippet)

	return c.getField(ctx, "/Wikis/Details", params.Values, "items")
}

// GetTopWikis returns the top wikis, optionally filtered by hub and
// language.
func (c *Client) GetTopWikis(ctx context.Context, opts *TopWikisOptions) (map[string]any, error) {
	if opts == nil {
		opts = &TopWikisOptions{}
	}

	params := newQuery()
	params.set("hub", opts.Hub)
	params.set("lang", opts.Lang)
	params.setInt("limit", opts.Limit)
	params.setInt("batch", opts.Batch)
	params.setFlag("expand", opts.Expand)

	return c.getBody(ctx, "/Wikis/List", params.Values)
}
