// Package wiki provides a MediaWiki API client for category listings.
//
// The client fetches the immediate subcategories of a category via the
// categorymembers list API, following continuation tokens until the
// listing is complete. Responses are cached through a [cache.Cache]
// backend and transient failures (timeouts, 5xx) are retried with
// exponential backoff.
//
// Category identity is the page title without the namespace prefix
// ("Science", not "Category:Science"); MediaWiki guarantees titles are
// unique within a wiki.
package wiki
