package herald

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

var allCacheStrategies = []CacheStrategy{
	CacheNone, CacheOneYear, CacheOneMonth, CacheOneWeek, CacheOneDay,
	CacheOneHour, CacheFiveMinutes, CacheAPI, CacheImmutable,
	CacheStylesheet, CacheJavaScript, CacheHashedAsset, CacheFont,
	CacheImage, CacheFavicon, CacheHTMLPage, CacheAPIResponse, CacheFeed,
	CacheSitemap, CacheManifest, CacheServiceWorker, CacheMediaStream,
	CacheDocument, CacheArchive,
}

func TestCacheForCoversAllStrategies(t *testing.T) {
	if len(allCacheStrategies) != 24 {
		t.Fatalf("Expected 24 strategies, got %d", len(allCacheStrategies))
	}

	for _, strategy := range allCacheStrategies {
		entry, err := CacheFor(strategy)
		if err != nil {
			t.Errorf("CacheFor(%s) returned error: %v", strategy, err)
			continue
		}
		if entry.CacheControl == "" {
			t.Errorf("CacheFor(%s) has empty Cache-Control", strategy)
		}
	}
}

func TestCacheForValues(t *testing.T) {
	cases := []struct {
		strategy   CacheStrategy
		control    string
		hasExpires bool
	}{
		{CacheNone, "no-store, no-cache, must-revalidate, proxy-revalidate", true},
		{CacheOneYear, "public, max-age=31536000", true},
		{CacheOneHour, "public, max-age=3600, must-revalidate", false},
		{CacheFiveMinutes, "public, max-age=300, must-revalidate", false},
		{CacheImmutable, "public, max-age=31536000, immutable", true},
		{CacheAPIResponse, "private, no-cache, must-revalidate", false},
		{CacheHTMLPage, "public, max-age=0, must-revalidate", false},
		{CacheServiceWorker, "no-store, no-cache, must-revalidate, proxy-revalidate", true},
	}

	for _, tc := range cases {
		entry, err := CacheFor(tc.strategy)
		if err != nil {
			t.Fatalf("CacheFor(%s): %v", tc.strategy, err)
		}
		if entry.CacheControl != tc.control {
			t.Errorf("CacheFor(%s): expected %q, got %q", tc.strategy, tc.control, entry.CacheControl)
		}
		if (entry.Expires != "") != tc.hasExpires {
			t.Errorf("CacheFor(%s): expected hasExpires=%v, got %q", tc.strategy, tc.hasExpires, entry.Expires)
		}
	}
}

func TestCacheForUnknownToken(t *testing.T) {
	_, err := CacheFor(CacheStrategy("TWO_FORTNIGHTS"))
	if err == nil {
		t.Fatal("Expected an error for an unknown strategy token")
	}
	if !Is(err, ErrUnknownStrategy) {
		t.Errorf("Expected err_unknown_cache_strategy, got %v", err)
	}
	if !strings.Contains(err.Error(), "TWO_FORTNIGHTS") {
		t.Errorf("Error should name the offending token: %v", err)
	}
}

func TestExpiresEndpoints(t *testing.T) {
	noCache, _ := CacheFor(CacheNone)
	if noCache.Expires != "Thu, 01 Jan 1970 00:00:00 GMT" {
		t.Errorf("No-cache Expires must be the Unix epoch, got %q", noCache.Expires)
	}

	immutable, _ := CacheFor(CacheImmutable)
	parsed, err := time.Parse(http.TimeFormat, immutable.Expires)
	if err != nil {
		t.Fatalf("Long-lived Expires is not an HTTP date: %v", err)
	}
	if until := time.Until(parsed); until < 360*24*time.Hour || until > 366*24*time.Hour {
		t.Errorf("Long-lived Expires should sit about a year out, got %v", until)
	}

	// All long-lived entries share the single table-init timestamp.
	stylesheet, _ := CacheFor(CacheStylesheet)
	if stylesheet.Expires != immutable.Expires {
		t.Errorf("Long-lived entries must share one Expires: %q vs %q", stylesheet.Expires, immutable.Expires)
	}
}
