package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/catvertex/wikigraph/pkg/cache"
)

const (
	// pageSize is the cmlimit sent per request; 500 is the maximum for
	// anonymous API access.
	pageSize = 500

	// defaultTimeout bounds a single API request.
	defaultTimeout = 30 * time.Second
)

// Client fetches category structure from a MediaWiki site.
//
// All methods are safe for sequential use; the traversal engine calls
// them from a single goroutine.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
	lang    string
	apiURL  string
	siteURL string
	refresh bool
}

// NewClient creates a client for the Wikipedia of the given language
// (e.g. "en"). Responses are cached in backend with the given TTL; pass
// [cache.NewNullCache] to disable caching.
func NewClient(lang string, backend cache.Cache, ttl time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: defaultTimeout},
		cache:   backend,
		ttl:     ttl,
		lang:    lang,
		apiURL:  fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang),
		siteURL: fmt.Sprintf("https://%s.wikipedia.org/wiki/", lang),
	}
}

// SetRefresh makes subsequent calls bypass the cache (but still update it).
func (c *Client) SetRefresh(refresh bool) { c.refresh = refresh }

// SetBaseURL overrides the API endpoint. Used in tests and for
// non-Wikipedia MediaWiki installations.
func (c *Client) SetBaseURL(api string) { c.apiURL = api }

// PageURL returns the category page address used as the node hyperlink.
func (c *Client) PageURL(title string) string {
	return c.siteURL + url.PathEscape("Category:"+strings.ReplaceAll(title, " ", "_"))
}

// Subcategories returns the titles of the immediate subcategories of the
// named category, without the namespace prefix and in API order. The
// caller is responsible for sorting.
func (c *Client) Subcategories(ctx context.Context, title string) ([]string, error) {
	key := fmt.Sprintf("wiki:%s:subcats:%s", c.lang, title)

	if !c.refresh {
		if data, hit, _ := c.cache.Get(ctx, key); hit {
			var titles []string
			if err := json.Unmarshal(data, &titles); err == nil {
				return titles, nil
			}
		}
	}

	var titles []string
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		titles, err = c.fetchSubcategories(ctx, title)
		return err
	})
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(titles); err == nil {
		_ = c.cache.Set(ctx, key, data, c.ttl)
	}
	return titles, nil
}

// fetchSubcategories pages through the categorymembers listing until the
// continuation token runs out.
func (c *Client) fetchSubcategories(ctx context.Context, title string) ([]string, error) {
	titles := []string{}
	cont := ""

	for {
		resp, err := c.queryPage(ctx, title, cont)
		if err != nil {
			return nil, err
		}
		for _, m := range resp.Query.CategoryMembers {
			titles = append(titles, strings.TrimPrefix(m.Title, "Category:"))
		}
		if resp.Continue.CmContinue == "" {
			return titles, nil
		}
		cont = resp.Continue.CmContinue
	}
}

func (c *Client) queryPage(ctx context.Context, title, cont string) (*apiResponse, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("list", "categorymembers")
	q.Set("cmtitle", "Category:"+title)
	q.Set("cmtype", "subcat")
	q.Set("cmlimit", fmt.Sprintf("%d", pageSize))
	if cont != "" {
		q.Set("cmcontinue", cont)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "wikigraph (https://github.com/catvertex/wikigraph)")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, cache.Retryable(fmt.Errorf("%w: %v", cache.ErrNetwork, err))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode categorymembers response: %w", err)
	}
	if decoded.Error != nil {
		if decoded.Error.Code == "invalidcategory" {
			return nil, fmt.Errorf("%w: category %q", cache.ErrNotFound, title)
		}
		return nil, fmt.Errorf("api error %s: %s", decoded.Error.Code, decoded.Error.Info)
	}
	return &decoded, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return cache.ErrNotFound
	case code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", cache.ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", cache.ErrNetwork, code)
	}
}

type apiResponse struct {
	Continue struct {
		CmContinue string `json:"cmcontinue"`
	} `json:"continue"`
	Query struct {
		CategoryMembers []struct {
			Title string `json:"title"`
		} `json:"categorymembers"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}
