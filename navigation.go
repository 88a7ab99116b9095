package wikia

import "context"

// GetNavigationData returns the wiki's navigation tree. Only the
// navigation part of the response body is returned.
func (c *Client) GetNavigationData(ctx context.Context) (any, error) {
	return c.getField(ctx, "/Navigation/Data", nil, "navigation")
}
