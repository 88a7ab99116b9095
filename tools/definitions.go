package tools

// AllTools contains all tool specifications for the Wikia MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "wikia_search",
		Method:   "Search",
		Title:    "Search Wiki",
		Category: "search",
		Description: `Search the configured wiki for articles matching a phrase.

USE WHEN: User asks "find articles about X", "search the wiki for X", or doesn't know which article covers a topic.

NOT FOR: Finding other wikis or communities (use wikia_search_cross_wiki). Not for quick title completion (use wikia_search_suggestions).

PARAMETERS:
- query: Search phrase (required)
- type: "articles" (default) or "videos"
- rank: Result order (default relevance; also newest, oldest, most-viewed, ...)
- limit: Max results per batch (default 25)
- batch: Result page, starting at 1

RETURNS: Matching articles with ids, titles, URLs and quality scores, plus batch paging info.

NOTE: Requires a server scoped to a wiki.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_search_cross_wiki",
		Method:   "SearchCrossWiki",
		Title:    "Search Across Wikis",
		Category: "search",
		Description: `Search across ALL Wikia communities for wikis matching a phrase.

USE WHEN: User asks "is there a wiki about X", "find communities for X".

NOT FOR: Searching articles within one wiki (use wikia_search).

PARAMETERS:
- query: Search phrase (required)
- hub: Restrict to a hub (Gaming, Entertainment, Lifestyle)
- lang: Comma-separated language codes, e.g. "en,de"
- limit: Max results per batch (default 25)
- batch: Result page, starting at 1
- expand: Return extended wiki records (defaults to true on a wiki-scoped server)

RETURNS: Matching wikis with ids, names and URLs, plus batch paging info.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_search_suggestions",
		Method:   "SearchSuggestions",
		Title:    "Search Suggestions",
		Category: "search",
		Description: `Suggest article titles for a partial phrase.

USE WHEN: User wants title completion, "what articles start with X", or a cheap existence check before fetching.

NOT FOR: Full-text search with snippets (use wikia_search).

PARAMETERS:
- query: Phrase to complete (required)

RETURNS: A flat list of suggested article titles.

NOTE: Requires a server scoped to a wiki.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// ARTICLE TOOLS
	// ==========================================================================
	{
		Name:     "wikia_article_simple",
		Method:   "GetArticleAsSimpleJSON",
		Title:    "Get Article Content",
		Category: "articles",
		Description: `Fetch one article as simplified section blocks (text, lists, images).

USE WHEN: User says "show me the X article", "read article 50", "what does the page say".

NOT FOR: Metadata like abstracts or thumbnails across many articles (use wikia_article_details).

PARAMETERS:
- id: Article id (required)

RETURNS: Ordered sections with titles, paragraph text, list elements and image references.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_article_details",
		Method:   "GetArticleDetails",
		Title:    "Get Article Details",
		Category: "articles",
		Description: `Fetch metadata for one or more articles: title, URL, abstract, thumbnail, revision info.

USE WHEN: User asks "what is article 50", "give me a summary and link for these articles".

NOT FOR: Full article text (use wikia_article_simple).

PARAMETERS:
- ids: Article ids (required)
- titles: Additional articles selected by title
- abstract: Max abstract length (default 100)
- width/height: Thumbnail dimensions

RETURNS: Per-article detail records keyed by id, plus the wiki basepath.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_article_list",
		Method:   "GetArticleList",
		Title:    "List Articles",
		Category: "articles",
		Description: `List articles alphabetically, optionally filtered by category or namespace.

USE WHEN: User asks "list all articles", "what's in category X", "browse the wiki".

NOT FOR: Ranked or filtered discovery (use wikia_top_articles or wikia_search).

PARAMETERS:
- category: Restrict to a category
- namespaces: Restrict to namespace ids
- limit: Max articles (default 25)
- offset: Pagination cursor from a previous response
- expand: Return extended article records

RETURNS: A page of articles with an offset cursor for the next page.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_most_linked",
		Method:   "GetMostLinked",
		Title:    "Most Linked Articles",
		Category: "articles",
		Description: `List the articles other pages link to most.

USE WHEN: User asks "what are the central pages", "most referenced articles".

NOT FOR: View-based popularity (use wikia_top_articles or wikia_popular_articles).

PARAMETERS:
- expand: Return extended article records

RETURNS: Articles ordered by incoming link count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_new_articles",
		Method:   "GetNewArticles",
		Title:    "Newest Articles",
		Category: "articles",
		Description: `List the most recently created articles.

USE WHEN: User asks "what's new on the wiki", "recently created pages".

NOT FOR: Recently edited pages (use wikia_recently_changed).

PARAMETERS:
- namespaces: Restrict to namespace ids
- limit: Max articles (default 20)
- min_article_quality: Drop articles below this quality score (default 10)

RETURNS: New articles with creator, creation date and quality score.

NOTE: Requires a server scoped to a wiki.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_popular_articles",
		Method:   "GetPopularArticles",
		Title:    "Popular Articles",
		Category: "articles",
		Description: `List articles popular right now.

USE WHEN: User asks "what's trending", "popular pages this week".

NOT FOR: All-time most viewed (use wikia_top_articles).

PARAMETERS:
- limit: Max articles (default 10, max 10)
- base_article_id: Restrict to articles related to this one
- expand: Return extended article records

RETURNS: Currently popular articles with ids, titles and URLs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_top_articles",
		Method:   "GetTopArticles",
		Title:    "Top Articles",
		Category: "articles",
		Description: `List the most viewed articles on the wiki.

USE WHEN: User asks "most viewed pages", "top articles".

NOT FOR: Current trends (use wikia_popular_articles). Not for link counts (use wikia_most_linked).

PARAMETERS:
- namespaces: Restrict to namespace ids
- category: Restrict to a category
- expand: Return extended article records
- limit: Max articles (default 10)

RETURNS: Articles ordered by page views.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_top_articles_by_hub",
		Method:   "GetTopArticlesByHub",
		Title:    "Top Articles by Hub",
		Category: "articles",
		Description: `List the most viewed articles across ALL wikis in a hub.

USE WHEN: User asks "top gaming articles", "most viewed pages across entertainment wikis".

NOT FOR: A single wiki's top articles (use wikia_top_articles).

PARAMETERS:
- hub: Hub name, e.g. Gaming, Entertainment, Lifestyle (required)
- lang: Wiki language code, e.g. "en"
- namespaces: Restrict to namespace ids

RETURNS: Top articles grouped by the wiki they belong to.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_related_pages",
		Method:   "GetRelatedPages",
		Title:    "Related Pages",
		Category: "articles",
		Description: `Find pages related to given articles.

USE WHEN: User asks "what's related to X", "similar articles", "what should I read next".

NOT FOR: Pages that merely link to an article.

PARAMETERS:
- ids: Article ids to find related pages for (required)
- limit: Max related pages per article (default 3)

RETURNS: Related pages per article id, with snippets and images.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// ACTIVITY TOOLS
	// ==========================================================================
	{
		Name:     "wikia_latest_activity",
		Method:   "GetLatestActivity",
		Title:    "Latest Activity",
		Category: "activity",
		Description: `Show the latest edit activity on the wiki.

USE WHEN: User asks "what's happening on the wiki", "show recent edits".

NOT FOR: A deduplicated per-article view (use wikia_recently_changed).

PARAMETERS:
- limit: Max entries (default 10)
- namespaces: Restrict to namespace ids
- allow_duplicates: Allow the same article to appear more than once

RETURNS: Edit events with article id, user id and revision timestamp.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_recently_changed",
		Method:   "GetRecentlyChangedArticles",
		Title:    "Recently Changed Articles",
		Category: "activity",
		Description: `List articles changed most recently.

USE WHEN: User asks "which pages changed recently", "recently edited articles".

NOT FOR: Newly created pages (use wikia_new_articles).

PARAMETERS:
- limit: Max entries (default 10)
- namespaces: Restrict to namespace ids
- allow_duplicates: Allow the same article to appear more than once

RETURNS: Changed articles with article id, user id and revision timestamp.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// NAVIGATION TOOLS
	// ==========================================================================
	{
		Name:     "wikia_navigation",
		Method:   "GetNavigationData",
		Title:    "Wiki Navigation",
		Category: "navigation",
		Description: `Fetch the wiki's navigation menu tree.

USE WHEN: User asks "how is the wiki organized", "what are the main sections".

NOT FOR: Listing articles (use wikia_article_list).

PARAMETERS: None.

RETURNS: The navigation tree with text and href per entry.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// USER TOOLS
	// ==========================================================================
	{
		Name:     "wikia_user_details",
		Method:   "GetUserDetails",
		Title:    "User Details",
		Category: "users",
		Description: `Fetch profile details for one or more users.

USE WHEN: User asks "who is user 123", "show profiles for these users".

PARAMETERS:
- ids: User ids (required)
- size: Avatar size in pixels (default 100)

RETURNS: Per-user records with name, avatar URL and profile path, plus the wiki basepath.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// WAM TOOLS
	// ==========================================================================
	{
		Name:     "wikia_wam_index",
		Method:   "GetWamIndex",
		Title:    "WAM Index",
		Category: "wam",
		Description: `Fetch the WAM popularity index, a daily ranking of all wikis.

USE WHEN: User asks "what are the top ranked wikis", "WAM score for wiki X", "wiki rankings on date Y".

NOT FOR: Finding wikis by name (use wikia_wikis_by_string).

PARAMETERS:
- wam_day: Unix timestamp (seconds) of the day to report on
- vertical_id: Vertical filter (2 Books, 3 Comics, 4 Lifestyle, 5 Music, 6 Movies, 7 TV, 8 Video Games)
- wiki_lang / wiki_id / wiki_word: Narrow to specific wikis
- sort_column: wam_rank, wam_change or wam
- offset/limit: Paging (default limit 20)

RETURNS: Ranked wikis with WAM scores and rank changes.

NOTE: Use wikia_wam_date_range first to learn which days have data.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_wam_date_range",
		Method:   "GetMinMaxWamIndexDate",
		Title:    "WAM Date Range",
		Category: "wam",
		Description: `Get the first and last day for which WAM index data exists.

USE WHEN: Before querying wikia_wam_index for a specific day, or when the user asks "how far back do rankings go".

PARAMETERS: None.

RETURNS: The earliest and latest WAM dates as RFC 3339 timestamps.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_wam_languages",
		Method:   "GetWamLanguages",
		Title:    "WAM Languages",
		Category: "wam",
		Description: `List the wiki languages that have WAM scores for a day.

USE WHEN: User asks "which languages have rankings", or before filtering wikia_wam_index by language.

PARAMETERS:
- wam_day: Unix timestamp (seconds) of the day to report on

RETURNS: Language codes with WAM data for that day.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// WIKI TOOLS
	// ==========================================================================
	{
		Name:     "wikia_wikis_by_string",
		Method:   "GetWikisByString",
		Title:    "Find Wikis",
		Category: "wikis",
		Description: `Find wikis whose name or topic matches a phrase.

USE WHEN: User asks "find the X wiki", "which wikis cover Y".

NOT FOR: Searching article content (use wikia_search or wikia_search_cross_wiki).

PARAMETERS:
- query: Phrase to match (required)
- hub: Restrict to a hub (Gaming, Entertainment, Lifestyle)
- lang: Wiki language code
- include_domain: Include the wiki domain in each result
- batch/limit: Paging (default limit 25)

RETURNS: Matching wikis with ids, names and domains.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_wiki_details",
		Method:   "GetWikiDetails",
		Title:    "Wiki Details",
		Category: "wikis",
		Description: `Fetch details for one or more wikis by id.

USE WHEN: User asks "tell me about wiki 159", "stats for these wikis".

NOT FOR: Finding wiki ids (use wikia_wikis_by_string first).

PARAMETERS:
- ids: Wiki ids (required)
- height/width: Wiki image dimensions (default width 100)
- snippet: Words of description to include

RETURNS: Per-wiki records keyed by id with stats, description and image.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikia_top_wikis",
		Method:   "GetTopWikis",
		Title:    "Top Wikis",
		Category: "wikis",
		Description: `List the top wikis, optionally per hub or language.

USE WHEN: User asks "biggest wikis", "top gaming communities".

NOT FOR: Day-by-day rankings with scores (use wikia_wam_index).

PARAMETERS:
- hub: Restrict to a hub (Gaming, Entertainment, Lifestyle)
- lang: Wiki language code
- batch/limit: Paging (default limit 25)
- expand: Return extended wiki records

RETURNS: Top wikis with ids, names and URLs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolsByCategory returns the tools in the given category.
func ToolsByCategory(category string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
