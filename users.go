package wikia

import "context"

// GetUserDetails returns details about the users with the given ids.
func (c *Client) GetUserDetails(ctx context.Context, ids []int, opts *UserDetailsOptions) (map[string]any, error) {
	if opts == nil {
		opts = &UserDetailsOptions{}
	}

	params := newQuery()
	params.setAlways("ids", joinInts(ids))
	params.setInt("size", opts.Size)

	return c.getBody(ctx, "/User/Details", params.Values)
}
