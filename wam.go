package wikia

import (
	"context"
	"time"
)

// GetMinMaxWamIndexDate returns the earliest and latest dates for which
// WAM index data is available.
func (c *Client) GetMinMaxWamIndexDate(ctx context.Context) (MinMaxWamIndexDate, error) {
	var body struct {
		MinMaxDates struct {
			MinDate int64 `json:"min_date"`
			MaxDate int64 `json:"max_date"`
		} `json:"min_max_dates"`
	}
	if err := c.get(ctx, "/WAM/MinMaxWamIndexDate", nil, &body); err != nil {
		return MinMaxWamIndexDate{}, err
	}

	// The API reports unix seconds; callers get millisecond instants.
	return MinMaxWamIndexDate{
		MinDate: time.UnixMilli(body.MinMaxDates.MinDate * 1000),
		MaxDate: time.UnixMilli(body.MinMaxDates.MaxDate * 1000),
	}, nil
}

// GetWamIndex returns the WAM score ranking of wikis for a given day.
func (c *Client) GetWamIndex(ctx context.Context, opts *WamIndexOptions) (map[string]any, error) {
	if opts == nil {
		opts = &WamIndexOptions{}
	}

	params := newQuery()
	params.setInt64("wam_day", opts.WamDay)
	params.setInt64("wam_previous_day", opts.WamPreviousDay)
	// veritical_id is not a typo here; the deployed API expects this
	// spelling.
	params.setInt("veritical_id", opts.VerticalID)
	params.set("wiki_lang", opts.WikiLang)
	params.setInt("wiki_id", opts.WikiID)
	params.set("wiki_word", opts.WikiWord)
	params.setBool("exclude_blacklist", opts.ExcludeBlacklist)
	params.setBool("fetch_admins", opts.FetchAdmins)
	params.setInt("avatar_size", opts.AvatarSize)
	params.setBool("fetch_wiki_images", opts.FetchWikiImages)
	params.setInt("wiki_image_height", opts.WikiImageHeight)
	params.setInt("wiki_image_width", opts.WikiImageWidth)
	params.set("sort_column", opts.SortColumn)
	params.set("sort_direction", opts.SortDirection)
	params.setInt("offset", opts.Offset)
	params.setInt("limit", opts.Limit)

	return c.getBody(ctx, "/WAM/WAMIndex", params.Values)
}

// GetWamLanguages returns the language codes for which WAM data exists on
// a given day.
func (c *Client) GetWamLanguages(ctx context.Context, opts *WamLanguagesOptions) (map[string]any, error) {
	if opts == nil {
		opts = &WamLanguagesOptions{}
	}

	params := newQuery()
	params.setInt64("wam_day", opts.WamDay)

	return c.getBody(ctx, "/WAM/WAMLanguages", params.Values)
}
