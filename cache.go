package herald

import (
	"net/http"
	"time"
)

// CacheStrategy names a pre-defined Cache-Control/Expires pairing.
type CacheStrategy string

const (
	CacheNone        CacheStrategy = "NO_CACHE"
	CacheOneYear     CacheStrategy = "ONE_YEAR"
	CacheOneMonth    CacheStrategy = "ONE_MONTH"
	CacheOneWeek     CacheStrategy = "ONE_WEEK"
	CacheOneDay      CacheStrategy = "ONE_DAY"
	CacheOneHour     CacheStrategy = "ONE_HOUR"
	CacheFiveMinutes CacheStrategy = "FIVE_MINUTES"
	CacheAPI         CacheStrategy = "API"
	CacheImmutable   CacheStrategy = "IMMUTABLE"

	CacheStylesheet    CacheStrategy = "STYLESHEET"
	CacheJavaScript    CacheStrategy = "JAVASCRIPT"
	CacheHashedAsset   CacheStrategy = "HASHED_ASSET"
	CacheFont          CacheStrategy = "FONT"
	CacheImage         CacheStrategy = "IMAGE"
	CacheFavicon       CacheStrategy = "FAVICON"
	CacheHTMLPage      CacheStrategy = "HTML_PAGE"
	CacheAPIResponse   CacheStrategy = "API_RESPONSE"
	CacheFeed          CacheStrategy = "FEED"
	CacheSitemap       CacheStrategy = "SITEMAP"
	CacheManifest      CacheStrategy = "MANIFEST"
	CacheServiceWorker CacheStrategy = "SERVICE_WORKER"
	CacheMediaStream   CacheStrategy = "MEDIA_STREAM"
	CacheDocument      CacheStrategy = "DOCUMENT"
	CacheArchive       CacheStrategy = "ARCHIVE"
)

// CacheEntry is one row of the strategy table. Expires is empty for entries
// that rely on Cache-Control alone.
type CacheEntry struct {
	CacheControl string
	Expires      string
}

const (
	ccNoStore   = "no-store, no-cache, must-revalidate, proxy-revalidate"
	ccImmutable = "public, max-age=31536000, immutable"
	ccAPI       = "private, no-cache, must-revalidate"
)

// The two Expires endpoints are fixed at table construction, not per lookup.
// Every long-lived entry in a process therefore shares one timestamp.
var (
	expiresEpoch   = time.Unix(0, 0).UTC().Format(http.TimeFormat)
	expiresOneYear = time.Now().AddDate(1, 0, 0).UTC().Format(http.TimeFormat)
)

var cacheStrategies = map[CacheStrategy]CacheEntry{
	CacheNone:        {CacheControl: ccNoStore, Expires: expiresEpoch},
	CacheOneYear:     {CacheControl: "public, max-age=31536000", Expires: expiresOneYear},
	CacheOneMonth:    {CacheControl: "public, max-age=2592000, must-revalidate"},
	CacheOneWeek:     {CacheControl: "public, max-age=604800, must-revalidate"},
	CacheOneDay:      {CacheControl: "public, max-age=86400, must-revalidate"},
	CacheOneHour:     {CacheControl: "public, max-age=3600, must-revalidate"},
	CacheFiveMinutes: {CacheControl: "public, max-age=300, must-revalidate"},
	CacheAPI:         {CacheControl: ccAPI},
	CacheImmutable:   {CacheControl: ccImmutable, Expires: expiresOneYear},

	CacheStylesheet:    {CacheControl: ccImmutable, Expires: expiresOneYear},
	CacheJavaScript:    {CacheControl: ccImmutable, Expires: expiresOneYear},
	CacheHashedAsset:   {CacheControl: ccImmutable, Expires: expiresOneYear},
	CacheFont:          {CacheControl: ccImmutable, Expires: expiresOneYear},
	CacheImage:         {CacheControl: "public, max-age=86400, stale-while-revalidate=604800"},
	CacheFavicon:       {CacheControl: "public, max-age=86400"},
	CacheHTMLPage:      {CacheControl: "public, max-age=0, must-revalidate"},
	CacheAPIResponse:   {CacheControl: ccAPI},
	CacheFeed:          {CacheControl: "public, max-age=3600, must-revalidate"},
	CacheSitemap:       {CacheControl: "public, max-age=86400"},
	CacheManifest:      {CacheControl: "public, max-age=86400"},
	CacheServiceWorker: {CacheControl: ccNoStore, Expires: expiresEpoch},
	CacheMediaStream:   {CacheControl: "public, max-age=3600, stale-while-revalidate=86400"},
	CacheDocument:      {CacheControl: "public, max-age=86400, must-revalidate"},
	CacheArchive:       {CacheControl: "public, max-age=604800"},
}

// CacheFor returns the table entry for a strategy token. The token set is
// closed; an unrecognized token is a caller bug and is reported as an error
// instead of silently producing an undefined entry.
func CacheFor(strategy CacheStrategy) (CacheEntry, error) {
	entry, ok := cacheStrategies[strategy]
	if !ok {
		return CacheEntry{}, Newf(ErrUnknownStrategy, "unknown cache strategy %q", string(strategy))
	}
	return entry, nil
}
