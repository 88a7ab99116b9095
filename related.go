package wikia

import "context"

// GetRelatedPages returns pages related to the given article ids. Only
// the items of the response body are returned.
func (c *Client) GetRelatedPages(ctx context.Context, ids []int, opts *RelatedPagesOptions) (any, error) {
	if opts == nil {
		opts = &RelatedPagesOptions{}
	}

	params := newQuery()
	params.setAlways("ids", joinInts(ids))
	params.setInt("limit", opts.Limit)

	return c.getField(ctx, "/RelatedPages/List", params.Values, "items")
}
