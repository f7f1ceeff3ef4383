package herald

import "path/filepath"

// Presets encode house policy for common response shapes as fixed call
// sequences against a fresh builder. They add no logic of their own; each
// preset's output equals the equivalent manual chain.

// FeedKind discriminates the syndication feed presets.
type FeedKind string

const (
	FeedRSS  FeedKind = "rss"
	FeedAtom FeedKind = "atom"
	FeedJSON FeedKind = "json"
)

var feedMIMETypes = map[FeedKind]string{
	FeedRSS:  "application/rss+xml; charset=utf-8",
	FeedAtom: "application/atom+xml; charset=utf-8",
	FeedJSON: "application/feed+json; charset=utf-8",
}

// API is the shape for realtime JSON endpoints: JSON content type, no
// caching, open CORS.
func API() *Builder {
	return NewBuilder().
		ContentType(TypeJSON).
		Cache(CacheAPIResponse).
		CORS()
}

// HTML is the shape for server-rendered pages: revalidated on every request,
// hardened with the default security set. Content, when given, feeds the
// ETag.
func HTML(content ...string) *Builder {
	b := NewBuilder().
		ContentType(TypeHTML).
		Cache(CacheHTMLPage).
		Security()
	if len(content) > 0 {
		b.ETag(content[0])
	}
	return b
}

// Stylesheet is the shape for CSS assets: cached long with an ETag for
// revalidation after a redeploy.
func Stylesheet(content ...string) *Builder {
	b := NewBuilder().
		ContentType(TypeCSS).
		Cache(CacheStylesheet)
	if len(content) > 0 {
		b.ETag(content[0])
	}
	return b
}

// Script is the shape for JavaScript assets, mirroring Stylesheet.
func Script(content ...string) *Builder {
	b := NewBuilder().
		ContentType(TypeJS).
		Cache(CacheJavaScript)
	if len(content) > 0 {
		b.ETag(content[0])
	}
	return b
}

// HashedAsset is the shape for fingerprinted build output: the hash in the
// URL is the cache buster, so the response is immutable and needs no ETag.
func HashedAsset(path string) *Builder {
	return NewBuilder().
		FilePath(path).
		Cache(CacheHashedAsset)
}

// Image is the shape for content images: cached a day, served stale while
// revalidating.
func Image(path string) *Builder {
	return NewBuilder().
		FilePath(path).
		Cache(CacheImage)
}

// Font is the shape for web fonts: immutable cache plus CORS, since browsers
// enforce the cross-origin protocol for font loads.
func Font(path string) *Builder {
	return NewBuilder().
		FilePath(path).
		Cache(CacheFont).
		CORS()
}

// Favicon is the shape for site icons.
func Favicon() *Builder {
	return NewBuilder().
		ContentType(TypeIcon).
		Cache(CacheFavicon)
}

// Media is the shape for audio/video streams.
func Media(path string) *Builder {
	return NewBuilder().
		FilePath(path).
		Cache(CacheMediaStream)
}

// Attachment is the shape for file downloads: typed by extension, cached as
// a document, delivered with a Content-Disposition attachment.
func Attachment(path string) *Builder {
	return NewBuilder().
		FilePath(path).
		Cache(CacheDocument).
		Download(basename(path))
}

// Feed is the shape for syndication feeds. Unknown kinds fall back to the
// generic XML type.
func Feed(kind FeedKind) *Builder {
	mime, ok := feedMIMETypes[kind]
	if !ok {
		mime = MIMEType(TypeXML)
	}
	return NewBuilder().
		MIMEType(mime).
		Cache(CacheFeed)
}

// Sitemap is the shape for sitemap.xml.
func Sitemap() *Builder {
	return NewBuilder().
		ContentType(TypeXML).
		Cache(CacheSitemap)
}

// Manifest is the shape for web app manifests.
func Manifest() *Builder {
	return NewBuilder().
		MIMEType("application/manifest+json; charset=utf-8").
		Cache(CacheManifest)
}

// ServiceWorker is the shape for service worker scripts, which must never be
// cached or a stale worker can pin an old deployment indefinitely.
func ServiceWorker() *Builder {
	return NewBuilder().
		ContentType(TypeJS).
		Cache(CacheServiceWorker)
}

func basename(path string) string {
	return filepath.Base(path)
}
