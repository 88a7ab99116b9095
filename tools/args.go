package tools

// Args and Result types for every MCP tool. The json tags define the
// wire shape of tool calls; the jsonschema tags drive the schema the
// MCP SDK advertises to clients.

// LatestActivityArgs contains parameters for the latest activity feed
type LatestActivityArgs struct {
	Limit           int   `json:"limit,omitempty" jsonschema_description:"Max number of activity entries (default 10)"`
	Namespaces      []int `json:"namespaces,omitempty" jsonschema_description:"Restrict to these article namespace ids (0 is the main namespace)"`
	AllowDuplicates bool  `json:"allow_duplicates,omitempty" jsonschema_description:"Allow the same article to appear more than once"`
}

// LatestActivityResult is the latest activity feed
type LatestActivityResult struct {
	Activity map[string]any `json:"activity"`
}

// RecentlyChangedArgs contains parameters for the recently changed feed
type RecentlyChangedArgs struct {
	Limit           int   `json:"limit,omitempty" jsonschema_description:"Max number of activity entries (default 10)"`
	Namespaces      []int `json:"namespaces,omitempty" jsonschema_description:"Restrict to these article namespace ids (0 is the main namespace)"`
	AllowDuplicates bool  `json:"allow_duplicates,omitempty" jsonschema_description:"Allow the same article to appear more than once"`
}

// RecentlyChangedResult is the recently changed articles feed
type RecentlyChangedResult struct {
	Activity map[string]any `json:"activity"`
}

// ArticleSimpleArgs contains parameters for fetching simplified article content
type ArticleSimpleArgs struct {
	ID int `json:"id" jsonschema:"required" jsonschema_description:"Article id on the wiki"`
}

// ArticleSimpleResult is an article rendered as simplified section blocks
type ArticleSimpleResult struct {
	Sections any `json:"sections"`
}

// ArticleDetailsArgs contains parameters for fetching article details
type ArticleDetailsArgs struct {
	IDs      []int    `json:"ids" jsonschema:"required" jsonschema_description:"Article ids to fetch"`
	Titles   []string `json:"titles,omitempty" jsonschema_description:"Additional articles selected by title"`
	Abstract int      `json:"abstract,omitempty" jsonschema_description:"Max length of the article abstract (default 100)"`
	Width    int      `json:"width,omitempty" jsonschema_description:"Thumbnail width in pixels"`
	Height   int      `json:"height,omitempty" jsonschema_description:"Thumbnail height in pixels"`
}

// ArticleDetailsResult is the article details payload
type ArticleDetailsResult struct {
	Details map[string]any `json:"details"`
}

// ArticleListArgs contains parameters for listing articles alphabetically
type ArticleListArgs struct {
	Category   string `json:"category,omitempty" jsonschema_description:"Restrict to articles in this category"`
	Namespaces []int  `json:"namespaces,omitempty" jsonschema_description:"Restrict to these article namespace ids"`
	Limit      int    `json:"limit,omitempty" jsonschema_description:"Max number of articles (default 25)"`
	Offset     string `json:"offset,omitempty" jsonschema_description:"Pagination cursor from a previous response"`
	Expand     bool   `json:"expand,omitempty" jsonschema_description:"Return extended article records"`
}

// ArticleListResult is a page of the alphabetical article list
type ArticleListResult struct {
	Articles map[string]any `json:"articles"`
}

// MostLinkedArgs contains parameters for the most linked articles
type MostLinkedArgs struct {
	Expand bool `json:"expand,omitempty" jsonschema_description:"Return extended article records"`
}

// MostLinkedResult is the list of most linked articles
type MostLinkedResult struct {
	Items any `json:"items"`
}

// NewArticlesArgs contains parameters for the newest articles
type NewArticlesArgs struct {
	Namespaces        []int `json:"namespaces,omitempty" jsonschema_description:"Restrict to these article namespace ids"`
	Limit             int   `json:"limit,omitempty" jsonschema_description:"Max number of articles (default 20)"`
	MinArticleQuality int   `json:"min_article_quality,omitempty" jsonschema_description:"Drop articles below this quality score (0-99, default 10)"`
}

// NewArticlesResult is the newest articles payload
type NewArticlesResult struct {
	Articles map[string]any `json:"articles"`
}

// PopularArticlesArgs contains parameters for popular articles
type PopularArticlesArgs struct {
	Limit         int  `json:"limit,omitempty" jsonschema_description:"Max number of articles (default 10, max 10)"`
	BaseArticleID int  `json:"base_article_id,omitempty" jsonschema_description:"Restrict to articles related to this article id"`
	Expand        bool `json:"expand,omitempty" jsonschema_description:"Return extended article records"`
}

// PopularArticlesResult is the popular articles payload
type PopularArticlesResult struct {
	Articles map[string]any `json:"articles"`
}

// TopArticlesArgs contains parameters for the most viewed articles
type TopArticlesArgs struct {
	Namespaces []int  `json:"namespaces,omitempty" jsonschema_description:"Restrict to these article namespace ids"`
	Category   string `json:"category,omitempty" jsonschema_description:"Restrict to articles in this category"`
	Expand     bool   `json:"expand,omitempty" jsonschema_description:"Return extended article records"`
	Limit      int    `json:"limit,omitempty" jsonschema_description:"Max number of articles (default 10)"`
}

// TopArticlesResult is the most viewed articles payload
type TopArticlesResult struct {
	Articles map[string]any `json:"articles"`
}

// TopArticlesByHubArgs contains parameters for top articles across a hub
type TopArticlesByHubArgs struct {
	Hub        string `json:"hub" jsonschema:"required" jsonschema_description:"Hub name (Gaming, Entertainment, Lifestyle)"`
	Lang       string `json:"lang,omitempty" jsonschema_description:"Wiki language code, e.g. en"`
	Namespaces []int  `json:"namespaces,omitempty" jsonschema_description:"Restrict to these article namespace ids"`
}

// TopArticlesByHubResult is the hub-wide top articles payload
type TopArticlesByHubResult struct {
	Articles map[string]any `json:"articles"`
}

// NavigationArgs contains parameters for the wiki navigation tree
type NavigationArgs struct{}

// NavigationResult is the wiki's navigation menu tree
type NavigationResult struct {
	Navigation any `json:"navigation"`
}

// RelatedPagesArgs contains parameters for related page lookup
type RelatedPagesArgs struct {
	IDs   []int `json:"ids" jsonschema:"required" jsonschema_description:"Article ids to find related pages for"`
	Limit int   `json:"limit,omitempty" jsonschema_description:"Max related pages per article (default 3)"`
}

// RelatedPagesResult maps article ids to their related pages
type RelatedPagesResult struct {
	Items any `json:"items"`
}

// SearchArgs contains parameters for searching within a wiki
type SearchArgs struct {
	Query             string `json:"query" jsonschema:"required" jsonschema_description:"Search phrase"`
	Type              string `json:"type,omitempty" jsonschema_description:"Search kind: articles (default) or videos"`
	Rank              string `json:"rank,omitempty" jsonschema_description:"Result order: default, newest, oldest, recently-modified, stable, most-viewed, freshest, stalest"`
	Limit             int    `json:"limit,omitempty" jsonschema_description:"Max results per batch (default 25)"`
	MinArticleQuality int    `json:"min_article_quality,omitempty" jsonschema_description:"Drop articles below this quality score (0-99, default 10)"`
	Batch             int    `json:"batch,omitempty" jsonschema_description:"Result page to return, starting at 1"`
	Namespaces        []int  `json:"namespaces,omitempty" jsonschema_description:"Restrict to these article namespace ids"`
}

// SearchResult is a page of wiki search results
type SearchResult struct {
	Results map[string]any `json:"results"`
}

// SearchCrossWikiArgs contains parameters for searching across all wikis
type SearchCrossWikiArgs struct {
	Query  string `json:"query" jsonschema:"required" jsonschema_description:"Search phrase"`
	Hub    string `json:"hub,omitempty" jsonschema_description:"Restrict to a hub (Gaming, Entertainment, Lifestyle)"`
	Lang   string `json:"lang,omitempty" jsonschema_description:"Comma-separated language codes, e.g. en,de"`
	Rank   string `json:"rank,omitempty" jsonschema_description:"Result order: default, newest, oldest, recently-modified, stable, most-viewed, freshest, stalest"`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Max results per batch (default 25)"`
	Batch  int    `json:"batch,omitempty" jsonschema_description:"Result page to return, starting at 1"`
	Expand *bool  `json:"expand,omitempty" jsonschema_description:"Return extended wiki records (defaults to true on a wiki-scoped server)"`
}

// SearchCrossWikiResult is a page of cross-wiki search results
type SearchCrossWikiResult struct {
	Results map[string]any `json:"results"`
}

// SearchSuggestionsArgs contains parameters for search suggestions
type SearchSuggestionsArgs struct {
	Query string `json:"query" jsonschema:"required" jsonschema_description:"Phrase to suggest article titles for"`
}

// SearchSuggestionsResult is the list of suggested article titles
type SearchSuggestionsResult struct {
	Titles []string `json:"titles"`
	Count  int      `json:"count"`
}

// UserDetailsArgs contains parameters for fetching user details
type UserDetailsArgs struct {
	IDs  []int `json:"ids" jsonschema:"required" jsonschema_description:"User ids to fetch"`
	Size int   `json:"size,omitempty" jsonschema_description:"Avatar size in pixels (default 100)"`
}

// UserDetailsResult is the user details payload
type UserDetailsResult struct {
	Users map[string]any `json:"users"`
}

// WamDateRangeArgs contains parameters for the WAM index date range
type WamDateRangeArgs struct{}

// WamDateRangeResult is the date range for which WAM scores exist
type WamDateRangeResult struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}

// WamIndexArgs contains parameters for the WAM popularity index
type WamIndexArgs struct {
	WamDay           int64  `json:"wam_day,omitempty" jsonschema_description:"Unix timestamp (seconds) of the day to report on"`
	WamPreviousDay   int64  `json:"wam_previous_day,omitempty" jsonschema_description:"Unix timestamp used for trend comparison"`
	VerticalID       int    `json:"vertical_id,omitempty" jsonschema_description:"Vertical filter: 2 Books, 3 Comics, 4 Lifestyle, 5 Music, 6 Movies, 7 TV, 8 Video Games"`
	WikiLang         string `json:"wiki_lang,omitempty" jsonschema_description:"Wiki language code, e.g. en"`
	WikiID           int    `json:"wiki_id,omitempty" jsonschema_description:"Restrict to a single wiki id"`
	WikiWord         string `json:"wiki_word,omitempty" jsonschema_description:"Restrict to wikis whose name contains this word"`
	ExcludeBlacklist bool   `json:"exclude_blacklist,omitempty" jsonschema_description:"Exclude blacklisted wikis"`
	FetchAdmins      bool   `json:"fetch_admins,omitempty" jsonschema_description:"Include wiki admins in each record"`
	AvatarSize       int    `json:"avatar_size,omitempty" jsonschema_description:"Admin avatar size in pixels"`
	FetchWikiImages  bool   `json:"fetch_wiki_images,omitempty" jsonschema_description:"Include wiki images in each record"`
	WikiImageHeight  int    `json:"wiki_image_height,omitempty" jsonschema_description:"Wiki image height in pixels"`
	WikiImageWidth   int    `json:"wiki_image_width,omitempty" jsonschema_description:"Wiki image width in pixels"`
	SortColumn       string `json:"sort_column,omitempty" jsonschema_description:"Sort column: wam_rank, wam_change or wam"`
	SortDirection    string `json:"sort_direction,omitempty" jsonschema_description:"Sort direction: ASC or DESC"`
	Offset           int    `json:"offset,omitempty" jsonschema_description:"Number of records to skip"`
	Limit            int    `json:"limit,omitempty" jsonschema_description:"Max number of records (default 20)"`
}

// WamIndexResult is the WAM popularity index payload
type WamIndexResult struct {
	Index map[string]any `json:"index"`
}

// WamLanguagesArgs contains parameters for WAM language codes
type WamLanguagesArgs struct {
	WamDay int64 `json:"wam_day,omitempty" jsonschema_description:"Unix timestamp (seconds) of the day to report on"`
}

// WamLanguagesResult is the set of languages with WAM scores
type WamLanguagesResult struct {
	Languages map[string]any `json:"languages"`
}

// WikisByStringArgs contains parameters for finding wikis by phrase
type WikisByStringArgs struct {
	Query         string `json:"query" jsonschema:"required" jsonschema_description:"Phrase to match wikis against"`
	Hub           string `json:"hub,omitempty" jsonschema_description:"Restrict to a hub (Gaming, Entertainment, Lifestyle)"`
	Lang          string `json:"lang,omitempty" jsonschema_description:"Wiki language code, e.g. en"`
	IncludeDomain bool   `json:"include_domain,omitempty" jsonschema_description:"Include the wiki domain in each result"`
	Expand        bool   `json:"expand,omitempty" jsonschema_description:"Return extended wiki records"`
	Batch         int    `json:"batch,omitempty" jsonschema_description:"Result page to return, starting at 1"`
	Limit         int    `json:"limit,omitempty" jsonschema_description:"Max results per batch (default 25)"`
}

// WikisByStringResult is a page of matching wikis
type WikisByStringResult struct {
	Wikis map[string]any `json:"wikis"`
}

// WikiDetailsArgs contains parameters for fetching wiki details
type WikiDetailsArgs struct {
	IDs     []int `json:"ids" jsonschema:"required" jsonschema_description:"Wiki ids to fetch"`
	Height  int   `json:"height,omitempty" jsonschema_description:"Wiki image height in pixels"`
	Width   int   `json:"width,omitempty" jsonschema_description:"Wiki image width in pixels (default 100)"`
	Snippet int   `json:"snippet,omitempty" jsonschema_description:"Words of wiki description to include"`
}

// WikiDetailsResult maps wiki ids to their details
type WikiDetailsResult struct {
	Items any `json:"items"`
}

// TopWikisArgs contains parameters for the top wikis list
type TopWikisArgs struct {
	Hub    string `json:"hub,omitempty" jsonschema_description:"Restrict to a hub (Gaming, Entertainment, Lifestyle)"`
	Lang   string `json:"lang,omitempty" jsonschema_description:"Wiki language code, e.g. en"`
	Limit  int    `json:"limit,omitempty" jsonschema_description:"Max number of wikis (default 25)"`
	Batch  int    `json:"batch,omitempty" jsonschema_description:"Result page to return, starting at 1"`
	Expand bool   `json:"expand,omitempty" jsonschema_description:"Return extended wiki records"`
}

// TopWikisResult is the top wikis payload
type TopWikisResult struct {
	Wikis map[string]any `json:"wikis"`
}
