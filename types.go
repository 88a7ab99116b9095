package wikia

import "time"

// Option structs below mirror the API's optional query parameters one to
// one. A nil options pointer is always valid. Zero-valued fields are
// omitted from the request; see query.go for the encoding rules.

// ActivityOptions configures GetLatestActivity and
// GetRecentlyChangedArticles.
type ActivityOptions struct {
	// Limit caps the number of returned entries.
	Limit int
	// Namespaces restricts results to the given article namespaces.
	Namespaces []int
	// AllowDuplicates permits the same article to appear more than once.
	AllowDuplicates bool
}

// ArticleDetailsOptions configures GetArticleDetails.
type ArticleDetailsOptions struct {
	// Titles selects articles by title in addition to the ids argument.
	Titles []string
	// Abstract is the maximum length of the article abstract.
	Abstract int
	// Width and Height size the article thumbnails.
	Width  int
	Height int
}

// ArticleListOptions configures GetArticleList.
type ArticleListOptions struct {
	Category   string
	Namespaces []int
	Limit      int
	// Offset is the opaque pagination cursor from a previous response.
	Offset string
	// Expand requests extended article records.
	Expand bool
}

// MostLinkedOptions configures GetMostLinked.
type MostLinkedOptions struct {
	Expand bool
}

// NewArticlesOptions configures GetNewArticles.
type NewArticlesOptions struct {
	Namespaces []int
	Limit      int
	// MinArticleQuality drops articles below the given quality score.
	MinArticleQuality int
}

// PopularArticlesOptions configures GetPopularArticles.
type PopularArticlesOptions struct {
	Limit int
	// BaseArticleID restricts results to articles related to the given one.
	BaseArticleID int
	Expand        bool
}

// TopArticlesOptions configures GetTopArticles.
type TopArticlesOptions struct {
	Namespaces []int
	Category   string
	Expand     bool
	Limit      int
}

// TopByHubOptions configures GetTopArticlesByHub.
type TopByHubOptions struct {
	// Lang filters by wiki language code, e.g. "en".
	Lang       string
	Namespaces []int
}

// RelatedPagesOptions configures GetRelatedPages.
type RelatedPagesOptions struct {
	Limit int
}

// SearchOptions configures Search.
type SearchOptions struct {
	// Type is the search kind, "articles" or "videos".
	Type string
	// Rank orders results: "default", "newest", "oldest",
	// "recently-modified", "stable", "most-viewed", "freshest", "stalest".
	Rank              string
	Limit             int
	MinArticleQuality int
	// Batch selects the result page, starting at 1.
	Batch      int
	Namespaces []int
}

// CrossWikiOptions configures SearchCrossWiki.
type CrossWikiOptions struct {
	Hub   string
	Lang  string
	Rank  string
	Limit int
	Batch int
	// Expand requests extended wiki records. When nil the default depends
	// on how the client was built: a wiki-scoped client expands, a
	// cross-wiki client does not.
	Expand *bool
}

// UserDetailsOptions configures GetUserDetails.
type UserDetailsOptions struct {
	// Size is the avatar size in pixels.
	Size int
}

// WamIndexOptions configures GetWamIndex. Field names follow the
// library's camelCase convention; they are renamed to the API's
// snake_case keys on the wire.
type WamIndexOptions struct {
	// WamDay is the unix timestamp (seconds) of the day to report on.
	WamDay int64
	// WamPreviousDay is the unix timestamp used for trend comparison.
	WamPreviousDay int64
	// VerticalID filters by vertical (2 Books, 3 Comics, 4 Lifestyle,
	// 5 Music, 6 Movies, 7 TV, 8 Video Games).
	VerticalID int
	WikiLang   string
	WikiID     int
	// WikiWord filters to wikis whose name contains the word.
	WikiWord         string
	ExcludeBlacklist bool
	FetchAdmins      bool
	AvatarSize       int
	FetchWikiImages  bool
	WikiImageHeight  int
	WikiImageWidth   int
	SortColumn       string
	SortDirection    string
	Offset           int
	Limit            int
}

// WamLanguagesOptions configures GetWamLanguages.
type WamLanguagesOptions struct {
	WamDay int64
}

// WikisByStringOptions configures GetWikisByString.
type WikisByStringOptions struct {
	Hub  string
	Lang string
	// IncludeDomain adds the wiki domain to each result.
	IncludeDomain bool
	Expand        bool
	Batch         int
	Limit         int
}

// WikiDetailsOptions configures GetWikiDetails.
type WikiDetailsOptions struct {
	Height int
	Width  int
	// Snippet is the number of words of wiki description to include.
	Snippet int
}

// TopWikisOptions configures GetTopWikis.
type TopWikisOptions struct {
	Hub    string
	Lang   string
	Limit  int
	Batch  int
	Expand bool
}

// MinMaxWamIndexDate is the date range for which WAM index data exists.
type MinMaxWamIndexDate struct {
	MinDate time.Time
	MaxDate time.Time
}
