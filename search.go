package wikia

import "context"

// Search runs a full-text search on the wiki.
// The client must be scoped to a wiki.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) (map[string]any, error) {
	if err := c.requireWiki("Search"); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &SearchOptions{}
	}

	params := newQuery()
	params.setAlways("query", query)
	params.set("type", opts.Type)
	params.set("rank", opts.Rank)
	params.setInt("limit", opts.Limit)
	params.setInt("minArticleQuality", opts.MinArticleQuality)
	params.setInt("batch", opts.Batch)
	params.setInts("namespaces", opts.Namespaces)

	return c.getBody(ctx, "/Search/List", params.Values)
}

// SearchCrossWiki runs a search across all of Wikia's wikis.
func (c *Client) SearchCrossWiki(ctx context.Context, query string, opts *CrossWikiOptions) (map[string]any, error) {
	if opts == nil {
		opts = &CrossWikiOptions{}
	}

	params := newQuery()
	params.setAlways("query", query)
	params.set("hub", opts.Hub)
	params.set("lang", opts.Lang)
	params.set("rank", opts.Rank)
	params.setInt("limit", opts.Limit)
	params.setInt("batch", opts.Batch)

	// Results expand by default when the client is scoped to a wiki;
	// an explicit Expand value always wins.
	expand := c.wiki != ""
	if opts.Expand != nil {
		expand = *opts.Expand
	}
	params.setFlag("expand", expand)

	return c.getBody(ctx, "/Search/CrossWiki", params.Values)
}

// SearchSuggestions returns article title suggestions for a query prefix.
// The client must be scoped to a wiki. The result is never nil; a query
// with no suggestions yields an empty slice.
func (c *Client) SearchSuggestions(ctx context.Context, query string) ([]string, error) {
	if err := c.requireWiki("SearchSuggestions"); err != nil {
		return nil, err
	}

	params := newQuery()
	params.setAlways("query", query)

	var body struct {
		Items []struct {
			Title string `json:"title"`
		} `json:"items"`
	}
	if err := c.get(ctx, "/SearchSuggestions/List", params.Values, &body); err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(body.Items))
	for _, item := range body.Items {
		titles = append(titles, item.Title)
	}
	return titles, nil
}
