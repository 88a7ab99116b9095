package wikia

import (
	"context"
	"strconv"
)

// GetArticleAsSimpleJSON returns an article's content as a simplified
// structure. Only the sections of the response body are returned.
func (c *Client) GetArticleAsSimpleJSON(ctx context.Context, id int) (any, error) {
	params := newQuery()
	params.setAlways("id", strconv.Itoa(id))

	return c.getField(ctx, "/Articles/AsSimpleJson", params.Values, "sections")
}

// GetArticleDetails returns details about the articles with the given ids.
func (c *Client) GetArticleDetails(ctx context.Context, ids []int, opts *ArticleDetailsOptions) (map[string]any, error) {
	if opts == nil {
		opts = &ArticleDetailsOptions{}
	}

	params := newQuery()
	params.setAlways("ids", joinInts(ids))
	params.setList("titles", opts.Titles)
	params.setInt("abstract", opts.Abstract)
	params.setInt("width", opts.Width)
	params.setInt("height", opts.Height)

	return c.getBody(ctx, "/Articles/Details", params.Values)
}

// GetArticleList returns an alphabetical list of articles, optionally
// restricted to a category. Pass the offset from a previous response to
// page through results.
func (c *Client) GetArticleList(ctx context.Context, opts *ArticleListOptions) (map[string]any, error) {
	if opts == nil {
		opts = &ArticleListOptions{}
	}

	params := newQuery()
	params.set("category", opts.Category)
	params.setInts("namespaces", opts.Namespaces)
	params.setInt("limit", opts.Limit)
	params.set("offset", opts.Offset)
	params.setFlag("expand", opts.Expand)

	return c.getBody(ctx, "/Articles/List", params.Values)
}

// GetMostLinked returns the most linked articles on the wiki. Only the
// items of the response body are returned.
func (c *Client) GetMostLinked(ctx context.Context, opts *MostLinkedOptions) (any, error) {
	if opts == nil {
		opts = &MostLinkedOptions{}
	}

	params := newQuery()
	params.setFlag("expand", opts.Expand)

	return c.getField(ctx, "/Articles/MostLinked", params.Values, "items")
}

// GetNewArticles returns the most recently created articles.
// The client must be scoped to a wiki.
func (c *Client) GetNewArticles(ctx context.Context, opts *NewArticlesOptions) (map[string]any, error) {
	if err := c.requireWiki("GetNewArticles"); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = &NewArticlesOptions{}
	}

	params := newQuery()
	params.setInts("namespaces", opts.Namespaces)
	params.setInt("limit", opts.Limit)
	params.setInt("minArticleQuality", opts.MinArticleQuality)

	return c.getBody(ctx, "/Articles/New", params.Values)
}

// GetPopularArticles returns the most popular articles on the wiki,
// ordered by pageview count.
func (c *Client) GetPopularArticles(ctx context.Context, opts *PopularArticlesOptions) (map[string]any, error) {
	if opts == nil {
		opts = &PopularArticlesOptions{}
	}

	params := newQuery()
	params.setInt("limit", opts.Limit)
	params.setInt("baseArticleId", opts.BaseArticleID)
	params.setFlag("expand", opts.Expand)

	return c.getBody(ctx, "/Articles/Popular", params.Values)
}

// GetTopArticles returns the top articles by pageviews.
func (c *Client) GetTopArticles(ctx context.Context, opts *TopArticlesOptions) (map[string]any, error) {
	if opts == nil {
		opts = &TopArticlesOptions{}
	}

	params := newQuery()
	params.setInts("namespaces", opts.Namespaces)
	params.set("category", opts.Category)
	params.setFlag("expand", opts.Expand)
	params.setInt("limit", opts.Limit)

	return c.getBody(ctx, "/Articles/Top", params.Values)
}

// GetTopArticlesByHub returns the top articles across all wikis of a hub,
// e.g. "Gaming".
func (c *Client) GetTopArticlesByHub(ctx context.Context, hub string, opts *TopByHubOptions) (map[string]any, error) {
	if opts == nil {
		opts = &TopByHubOptions{}
	}

	params := newQuery()
	params.setAlways("hub", hub)
	params.set("lang", opts.Lang)
	params.setInts("namespaces", opts.Namespaces)

	return c.getBody(ctx, "/Articles/TopByHub", params.Values)
}
