package tools

import (
	"context"
	"time"

	"github.com/ravener/wikia"
)

// API adapts a wikia.Client to the MCP Args/Result method shape the
// handler registry dispatches on. The client itself stays MCP-free.
type API struct {
	client *wikia.Client
}

// NewAPI wraps a client for tool registration.
func NewAPI(client *wikia.Client) *API {
	return &API{client: client}
}

// Client returns the underlying wikia client.
func (a *API) Client() *wikia.Client {
	return a.client
}

// GetLatestActivityMCP is the MCP wrapper for GetLatestActivity
func (a *API) GetLatestActivityMCP(ctx context.Context, args LatestActivityArgs) (LatestActivityResult, error) {
	body, err := a.client.GetLatestActivity(ctx, &wikia.ActivityOptions{
		Limit:           args.Limit,
		Namespaces:      args.Namespaces,
		AllowDuplicates: args.AllowDuplicates,
	})
	if err != nil {
		return LatestActivityResult{}, err
	}
	return LatestActivityResult{Activity: body}, nil
}

// GetRecentlyChangedArticlesMCP is the MCP wrapper for GetRecentlyChangedArticles
func (a *API) GetRecentlyChangedArticlesMCP(ctx context.Context, args RecentlyChangedArgs) (RecentlyChangedResult, error) {
	body, err := a.client.GetRecentlyChangedArticles(ctx, &wikia.ActivityOptions{
		Limit:           args.Limit,
		Namespaces:      args.Namespaces,
		AllowDuplicates: args.AllowDuplicates,
	})
	if err != nil {
		return RecentlyChangedResult{}, err
	}
	return RecentlyChangedResult{Activity: body}, nil
}

// GetArticleAsSimpleJSONMCP is the MCP wrapper for GetArticleAsSimpleJSON
func (a *API) GetArticleAsSimpleJSONMCP(ctx context.Context, args ArticleSimpleArgs) (ArticleSimpleResult, error) {
	if err := validateID("article", args.ID); err != nil {
		return ArticleSimpleResult{}, err
	}

	sections, err := a.client.GetArticleAsSimpleJSON(ctx, args.ID)
	if err != nil {
		return ArticleSimpleResult{}, err
	}
	return ArticleSimpleResult{Sections: sections}, nil
}

// GetArticleDetailsMCP is the MCP wrapper for GetArticleDetails
func (a *API) GetArticleDetailsMCP(ctx context.Context, args ArticleDetailsArgs) (ArticleDetailsResult, error) {
	if err := validateIDs("article", args.IDs); err != nil {
		return ArticleDetailsResult{}, err
	}

	body, err := a.client.GetArticleDetails(ctx, args.IDs, &wikia.ArticleDetailsOptions{
		Titles:   args.Titles,
		Abstract: args.Abstract,
		Width:    args.Width,
		Height:   args.Height,
	})
	if err != nil {
		return ArticleDetailsResult{}, err
	}
	return ArticleDetailsResult{Details: body}, nil
}

// GetArticleListMCP is the MCP wrapper for GetArticleList
func (a *API) GetArticleListMCP(ctx context.Context, args ArticleListArgs) (ArticleListResult, error) {
	body, err := a.client.GetArticleList(ctx, &wikia.ArticleListOptions{
		Category:   args.Category,
		Namespaces: args.Namespaces,
		Limit:      args.Limit,
		Offset:     args.Offset,
		Expand:     args.Expand,
	})
	if err != nil {
		return ArticleListResult{}, err
	}
	return ArticleListResult{Articles: body}, nil
}

// GetMostLinkedMCP is the MCP wrapper for GetMostLinked
func (a *API) GetMostLinkedMCP(ctx context.Context, args MostLinkedArgs) (MostLinkedResult, error) {
	items, err := a.client.GetMostLinked(ctx, &wikia.MostLinkedOptions{Expand: args.Expand})
	if err != nil {
		return MostLinkedResult{}, err
	}
	return MostLinkedResult{Items: items}, nil
}

// GetNewArticlesMCP is the MCP wrapper for GetNewArticles
func (a *API) GetNewArticlesMCP(ctx context.Context, args NewArticlesArgs) (NewArticlesResult, error) {
	body, err := a.client.GetNewArticles(ctx, &wikia.NewArticlesOptions{
		Namespaces:        args.Namespaces,
		Limit:             args.Limit,
		MinArticleQuality: args.MinArticleQuality,
	})
	if err != nil {
		return NewArticlesResult{}, err
	}
	return NewArticlesResult{Articles: body}, nil
}

// GetPopularArticlesMCP is the MCP wrapper for GetPopularArticles
func (a *API) GetPopularArticlesMCP(ctx context.Context, args PopularArticlesArgs) (PopularArticlesResult, error) {
	body, err := a.client.GetPopularArticles(ctx, &wikia.PopularArticlesOptions{
		Limit:         args.Limit,
		BaseArticleID: args.BaseArticleID,
		Expand:        args.Expand,
	})
	if err != nil {
		return PopularArticlesResult{}, err
	}
	return PopularArticlesResult{Articles: body}, nil
}

// GetTopArticlesMCP is the MCP wrapper for GetTopArticles
func (a *API) GetTopArticlesMCP(ctx context.Context, args TopArticlesArgs) (TopArticlesResult, error) {
	body, err := a.client.GetTopArticles(ctx, &wikia.TopArticlesOptions{
		Namespaces: args.Namespaces,
		Category:   args.Category,
		Expand:     args.Expand,
		Limit:      args.Limit,
	})
	if err != nil {
		return TopArticlesResult{}, err
	}
	return TopArticlesResult{Articles: body}, nil
}

// GetTopArticlesByHubMCP is the MCP wrapper for GetTopArticlesByHub
func (a *API) GetTopArticlesByHubMCP(ctx context.Context, args TopArticlesByHubArgs) (TopArticlesByHubResult, error) {
	if err := validateHub(args.Hub); err != nil {
		return TopArticlesByHubResult{}, err
	}

	body, err := a.client.GetTopArticlesByHub(ctx, args.Hub, &wikia.TopByHubOptions{
		Lang:       args.Lang,
		Namespaces: args.Namespaces,
	})
	if err != nil {
		return TopArticlesByHubResult{}, err
	}
	return TopArticlesByHubResult{Articles: body}, nil
}

// GetNavigationDataMCP is the MCP wrapper for GetNavigationData
func (a *API) GetNavigationDataMCP(ctx context.Context, _ NavigationArgs) (NavigationResult, error) {
	nav, err := a.client.GetNavigationData(ctx)
	if err != nil {
		return NavigationResult{}, err
	}
	return NavigationResult{Navigation: nav}, nil
}

// GetRelatedPagesMCP is the MCP wrapper for GetRelatedPages
func (a *API) GetRelatedPagesMCP(ctx context.Context, args RelatedPagesArgs) (RelatedPagesResult, error) {
	if err := validateIDs("article", args.IDs); err != nil {
		return RelatedPagesResult{}, err
	}

	items, err := a.client.GetRelatedPages(ctx, args.IDs, &wikia.RelatedPagesOptions{Limit: args.Limit})
	if err != nil {
		return RelatedPagesResult{}, err
	}
	return RelatedPagesResult{Items: items}, nil
}

// SearchMCP is the MCP wrapper for Search
func (a *API) SearchMCP(ctx context.Context, args SearchArgs) (SearchResult, error) {
	if err := validateQuery(args.Query); err != nil {
		return SearchResult{}, err
	}

	body, err := a.client.Search(ctx, args.Query, &wikia.SearchOptions{
		Type:              args.Type,
		Rank:              args.Rank,
		Limit:             args.Limit,
		MinArticleQuality: args.MinArticleQuality,
		Batch:             args.Batch,
		Namespaces:        args.Namespaces,
	})
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Results: body}, nil
}

// SearchCrossWikiMCP is the MCP wrapper for SearchCrossWiki
func (a *API) SearchCrossWikiMCP(ctx context.Context, args SearchCrossWikiArgs) (SearchCrossWikiResult, error) {
	if err := validateQuery(args.Query); err != nil {
		return SearchCrossWikiResult{}, err
	}

	body, err := a.client.SearchCrossWiki(ctx, args.Query, &wikia.CrossWikiOptions{
		Hub:    args.Hub,
		Lang:   args.Lang,
		Rank:   args.Rank,
		Limit:  args.Limit,
		Batch:  args.Batch,
		Expand: args.Expand,
	})
	if err != nil {
		return SearchCrossWikiResult{}, err
	}
	return SearchCrossWikiResult{Results: body}, nil
}

// SearchSuggestionsMCP is the MCP wrapper for SearchSuggestions
func (a *API) SearchSuggestionsMCP(ctx context.Context, args SearchSuggestionsArgs) (SearchSuggestionsResult, error) {
	if err := validateQuery(args.Query); err != nil {
		return SearchSuggestionsResult{}, err
	}

	titles, err := a.client.SearchSuggestions(ctx, args.Query)
	if err != nil {
		return SearchSuggestionsResult{}, err
	}
	return SearchSuggestionsResult{Titles: titles, Count: len(titles)}, nil
}

// GetUserDetailsMCP is the MCP wrapper for GetUserDetails
func (a *API) GetUserDetailsMCP(ctx context.Context, args UserDetailsArgs) (UserDetailsResult, error) {
	if err := validateIDs("user", args.IDs); err != nil {
		return UserDetailsResult{}, err
	}

	body, err := a.client.GetUserDetails(ctx, args.IDs, &wikia.UserDetailsOptions{Size: args.Size})
	if err != nil {
		return UserDetailsResult{}, err
	}
	return UserDetailsResult{Users: body}, nil
}

// GetMinMaxWamIndexDateMCP is the MCP wrapper for GetMinMaxWamIndexDate
func (a *API) GetMinMaxWamIndexDateMCP(ctx context.Context, _ WamDateRangeArgs) (WamDateRangeResult, error) {
	dates, err := a.client.GetMinMaxWamIndexDate(ctx)
	if err != nil {
		return WamDateRangeResult{}, err
	}
	return WamDateRangeResult{
		MinDate: dates.MinDate.UTC().Format(time.RFC3339),
		MaxDate: dates.MaxDate.UTC().Format(time.RFC3339),
	}, nil
}

// GetWamIndexMCP is the MCP wrapper for GetWamIndex
func (a *API) GetWamIndexMCP(ctx context.Context, args WamIndexArgs) (WamIndexResult, error) {
	body, err := a.client.GetWamIndex(ctx, &wikia.WamIndexOptions{
		WamDay:           args.WamDay,
		WamPreviousDay:   args.WamPreviousDay,
		VerticalID:       args.VerticalID,
		WikiLang:         args.WikiLang,
		WikiID:           args.WikiID,
		WikiWord:         args.WikiWord,
		ExcludeBlacklist: args.ExcludeBlacklist,
		FetchAdmins:      args.FetchAdmins,
		AvatarSize:       args.AvatarSize,
		FetchWikiImages:  args.FetchWikiImages,
		WikiImageHeight:  args.WikiImageHeight,
		WikiImageWidth:   args.WikiImageWidth,
		SortColumn:       args.SortColumn,
		SortDirection:    args.SortDirection,
		Offset:           args.Offset,
		Limit:            args.Limit,
	})
	if err != nil {
		return WamIndexResult{}, err
	}
	return WamIndexResult{Index: body}, nil
}

// GetWamLanguagesMCP is the MCP wrapper for GetWamLanguages
func (a *API) GetWamLanguagesMCP(ctx context.Context, args WamLanguagesArgs) (WamLanguagesResult, error) {
	body, err := a.client.GetWamLanguages(ctx, &wikia.WamLanguagesOptions{WamDay: args.WamDay})
	if err != nil {
		return WamLanguagesResult{}, err
	}
	return WamLanguagesResult{Languages: body}, nil
}

// GetWikisByStringMCP is the MCP wrapper for GetWikisByString
func (a *API) GetWikisByStringMCP(ctx context.Context, args WikisByStringArgs) (WikisByStringResult, error) {
	if err := validateQuery(args.Query); err != nil {
		return WikisByStringResult{}, err
	}

	body, err := a.client.GetWikisByString(ctx, args.Query, &wikia.WikisByStringOptions{
		Hub:           args.Hub,
		Lang:          args.Lang,
		IncludeDomain: args.IncludeDomain,
		Expand:        args.Expand,
		Batch:         args.Batch,
		Limit:         args.Limit,
	})
	if err != nil {
		return WikisByStringResult{}, err
	}
	return WikisByStringResult{Wikis: body}, nil
}

// GetWikiDetailsMCP is the MCP wrapper for GetWikiDetails
func (a *API) GetWikiDetailsMCP(ctx context.Context, args WikiDetailsArgs) (WikiDetailsResult, error) {
	if err := validateIDs("wiki", args.IDs); err != nil {
		return WikiDetailsResult{}, err
	}

	items, err := a.client.GetWikiDetails(ctx, args.IDs, &wikia.WikiDetailsOptions{
		Height:  args.Height,
		Width:   args.Width,
		Snippet: args.Snippet,
	})
	if err != nil {
		return WikiDetailsResult{}, err
	}
	return WikiDetailsResult{Items: items}, nil
}

// GetTopWikisMCP is the MCP wrapper for GetTopWikis
func (a *API) GetTopWikisMCP(ctx context.Context, args TopWikisArgs) (TopWikisResult, error) {
	body, err := a.client.GetTopWikis(ctx, &wikia.TopWikisOptions{
		Hub:    args.Hub,
		Lang:   args.Lang,
		Limit:  args.Limit,
		Batch:  args.Batch,
		Expand: args.Expand,
	})
	if err != nil {
		return TopWikisResult{}, err
	}
	return TopWikisResult{Wikis: body}, nil
}
