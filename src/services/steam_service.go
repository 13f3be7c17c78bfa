package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"github.com/JayRichh/steamshare/src/logger"
	"github.com/JayRichh/steamshare/src/models"
	"github.com/patrickmn/go-cache"
	"golang.org/x/net/publicsuffix"
)

// MaxInventoryPageSize is the hard ceiling Steam accepts per page. Caller
// input above it is clamped, never trusted.
const MaxInventoryPageSize = 100

const defaultLocale = "english"

// Steam serves the community endpoint more reliably to browser-looking clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"

// steamServiceImpl implements SteamService against the Steam Community
// inventory endpoint, with a short-lived page cache in front of it.
type steamServiceImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pageCache  *cache.Cache
	cacheTTL   time.Duration
}

// NewSteamService creates the upstream client. The cookie jar keeps Steam's
// session cookies across calls, which avoids some anonymous-request
// throttling. apiKey is the server-held service credential and may be empty.
func NewSteamService(baseURL, apiKey string, timeout time.Duration, pageCache *cache.Cache, cacheTTL time.Duration) SteamService {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		logger.L.Error("Failed to create cookie jar", "error", err)
	}

	return &steamServiceImpl{
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		baseURL:   baseURL,
		apiKey:    apiKey,
		pageCache: pageCache,
		cacheTTL:  cacheTTL,
	}
}

// FetchInventoryPage requests one page of a user's inventory and classifies
// the outcome: a decoded RawPage, an *UpstreamError (Steam reported a
// failure inside a 2xx body), or a *TransportError (network error, timeout,
// or non-2xx status). Pages are cached for the configured validity window so
// repeated gallery loads do not hammer Steam.
func (s *steamServiceImpl) FetchInventoryPage(ctx context.Context, params FetchInventoryParams) (*models.RawInventoryPage, error) {
	count := params.Count
	if count <= 0 || count > MaxInventoryPageSize {
		count = MaxInventoryPageSize
	}
	locale := params.Locale
	if locale == "" {
		locale = defaultLocale
	}

	cacheKey := fmt.Sprintf("inventory:%s:%s:%s:%d:%s:%s",
		params.SteamID, params.AppID, params.ContextID, count, params.StartAssetID, locale)
	if s.pageCache != nil {
		if cached, found := s.pageCache.Get(cacheKey); found {
			logger.L.Debug("Inventory page served from cache", "key", cacheKey)
			return cached.(*models.RawInventoryPage), nil
		}
	}

	endpoint := fmt.Sprintf("%s/inventory/%s/%s/%s",
		s.baseURL, url.PathEscape(params.SteamID), url.PathEscape(params.AppID), url.PathEscape(params.ContextID))

	q := url.Values{}
	q.Set("l", locale)
	q.Set("count", strconv.Itoa(count))
	if params.StartAssetID != "" {
		q.Set("start_assetid", params.StartAssetID)
	}
	if s.apiKey != "" {
		q.Set("key", s.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("calling steam inventory endpoint: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("reading steam inventory response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var page models.RawInventoryPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding steam inventory response: %w", err)}
	}

	if page.Error != "" {
		return nil, &UpstreamError{Message: page.Error}
	}

	// Steam is not contractually required to populate any of these.
	if page.Assets == nil {
		page.Assets = []models.RawAsset{}
	}
	if page.Descriptions == nil {
		page.Descriptions = []models.RawDescription{}
	}

	if s.pageCache != nil {
		s.pageCache.Set(cacheKey, &page, s.cacheTTL)
	}
	return &page, nil
}
