package herald

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Builder accumulates response headers through a fluent chain and emits them
// as a plain map or an http.Header. A builder belongs to one response being
// assembled by one handler; it carries no locking and must not be shared
// across goroutines.
type Builder struct {
	headers map[string]string
	err     error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{headers: make(map[string]string)}
}

// Err reports the first configuration violation hit during the chain, if any.
// Violating calls are rejected before touching the header map, so the
// accumulated state stays valid even after an error.
func (b *Builder) Err() error {
	return b.err
}

// ContentType sets Content-Type from a content-type token via the MIME table.
func (b *Builder) ContentType(token ContentType) *Builder {
	b.headers[HeaderContentType] = MIMEType(token)
	return b
}

// FilePath sets Content-Type from a file path's extension.
func (b *Builder) FilePath(path string) *Builder {
	b.headers[HeaderContentType] = MIMETypeForPath(path)
	return b
}

// MIMEType sets Content-Type verbatim, bypassing the table.
func (b *Builder) MIMEType(raw string) *Builder {
	b.headers[HeaderContentType] = raw
	return b
}

// Cache applies a named cache strategy: Cache-Control always, Expires when
// the strategy defines one. An unknown strategy records a chain error and
// leaves the map untouched.
func (b *Builder) Cache(strategy CacheStrategy) *Builder {
	entry, err := CacheFor(strategy)
	if err != nil {
		b.fail(err)
		return b
	}
	b.headers[HeaderCacheControl] = entry.CacheControl
	if entry.Expires != "" {
		b.headers[HeaderExpires] = entry.Expires
	}
	return b
}

// ETag sets the ETag header. Empty content is skipped. Content that already
// starts with a double quote is treated as a pre-formatted ETag and set
// verbatim; anything else is hashed and quoted.
func (b *Builder) ETag(content string) *Builder {
	if content == "" {
		return b
	}
	if strings.HasPrefix(content, `"`) {
		b.headers[HeaderETag] = content
		return b
	}
	return b.ETagBytes([]byte(content))
}

// ETagBytes sets the ETag header from raw content bytes.
func (b *Builder) ETagBytes(content []byte) *Builder {
	if len(content) == 0 {
		return b
	}
	b.headers[HeaderETag] = `"` + HashContent(content) + `"`
	return b
}

// LastModified sets Last-Modified in HTTP-date form.
func (b *Builder) LastModified(t time.Time) *Builder {
	b.headers[HeaderLastModified] = t.UTC().Format(http.TimeFormat)
	return b
}

// ContentLength sets Content-Length explicitly. An explicit value wins over
// the length Build derives from content.
func (b *Builder) ContentLength(bytes int) *Builder {
	b.headers[HeaderContentLength] = strconv.Itoa(bytes)
	return b
}

// Redirect sets Location plus an informational marker for permanence. The
// status code stays the caller's responsibility.
func (b *Builder) Redirect(url string, permanent bool) *Builder {
	b.headers[HeaderLocation] = url
	if permanent {
		b.headers[HeaderXRedirectType] = "permanent"
	} else {
		b.headers[HeaderXRedirectType] = "temporary"
	}
	return b
}

// CORS applies cross-origin headers. When Credentials is not set it defaults
// to true for a specific origin and false for the wildcard. A credentialed
// wildcard is rejected by every compliant browser, so that combination fails
// the call (see Err) without mutating the builder.
func (b *Builder) CORS(opts ...CORSOptions) *Builder {
	var o CORSOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	origin := o.Origin
	if origin == "" {
		origin = "*"
	}

	credentials := origin != "*"
	if o.Credentials != nil {
		credentials = *o.Credentials
	}

	if credentials && origin == "*" {
		b.fail(New(ErrInvalidCORS, "cannot use credentials with wildcard origin; set an explicit origin"))
		return b
	}

	methods := o.Methods
	if len(methods) == 0 {
		methods = defaultCORSMethods
	}
	headers := o.Headers
	if len(headers) == 0 {
		headers = defaultCORSHeaders
	}
	maxAge := o.MaxAge
	if maxAge <= 0 {
		maxAge = defaultCORSMaxAge
	}

	b.headers[HeaderAllowOrigin] = origin
	b.headers[HeaderAllowMethods] = strings.Join(methods, ", ")
	b.headers[HeaderAllowHeaders] = strings.Join(headers, ", ")
	if credentials {
		b.headers[HeaderAllowCredentials] = "true"
	}
	b.headers[HeaderMaxAge] = strconv.Itoa(maxAge)
	return b
}

// Security applies the security header set, merging the given options over
// the defaults (HSTS one year, nosniff, SAMEORIGIN framing, XSS filter).
func (b *Builder) Security(opts ...SecurityOptions) *Builder {
	var o SecurityOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	o.apply(b.headers)
	return b
}

// Custom sets an arbitrary header verbatim. The caller is responsible for
// valid header syntax.
func (b *Builder) Custom(name, value string) *Builder {
	b.headers[name] = value
	return b
}

// CustomHeaders merges a header map into the builder, overwriting on
// collision.
func (b *Builder) CustomHeaders(headers map[string]string) *Builder {
	for name, value := range headers {
		b.headers[name] = value
	}
	return b
}

// Vary appends fields to the Vary header instead of overwriting it.
func (b *Builder) Vary(fields ...string) *Builder {
	if len(fields) == 0 {
		return b
	}
	joined := strings.Join(fields, ", ")
	if existing, ok := b.headers[HeaderVary]; ok && existing != "" {
		b.headers[HeaderVary] = existing + ", " + joined
	} else {
		b.headers[HeaderVary] = joined
	}
	return b
}

// Compress sets Content-Encoding. An empty encoding is skipped so callers can
// pass through a negotiated value unconditionally.
func (b *Builder) Compress(encoding string) *Builder {
	if encoding == "" {
		return b
	}
	b.headers[HeaderContentEncoding] = encoding
	return b
}

// Download sets Content-Disposition to an attachment with the given filename.
func (b *Builder) Download(filename string) *Builder {
	b.headers[HeaderContentDisposition] = `attachment; filename="` + filename + `"`
	return b
}

// RequestID sets X-Request-ID, generating a fresh UUID when the caller has
// no existing identifier to propagate.
func (b *Builder) RequestID(id ...string) *Builder {
	value := ""
	if len(id) > 0 {
		value = id[0]
	}
	if value == "" {
		value = uuid.NewString()
	}
	b.headers[HeaderXRequestID] = value
	return b
}

// JSON encodes v, then sets Content-Type, ETag and Content-Length from the
// encoded bytes. The encoded payload is returned so the caller can write the
// same bytes the headers describe. An encoding failure records a chain error
// and leaves the map untouched.
func (b *Builder) JSON(v interface{}) (*Builder, []byte) {
	payload, err := sonic.Marshal(v)
	if err != nil {
		b.fail(Wrap(err, ErrInvalidJSON, "failed to encode JSON payload"))
		return b, nil
	}
	b.headers[HeaderContentType] = ContentTypeJSON
	b.ETagBytes(payload)
	b.ContentLength(len(payload))
	return b, payload
}

// Build returns a copy of the accumulated headers. The builder's internal map
// is never aliased, so callers cannot mutate builder state through the
// returned value.
func (b *Builder) Build() map[string]string {
	out := make(map[string]string, len(b.headers))
	for name, value := range b.headers {
		out[name] = value
	}
	return out
}

// BuildFor is Build plus a derived Content-Length for the given content
// bytes. An explicitly set Content-Length wins.
func (b *Builder) BuildFor(content []byte) map[string]string {
	out := b.Build()
	if _, ok := out[HeaderContentLength]; !ok {
		out[HeaderContentLength] = strconv.Itoa(len(content))
	}
	return out
}

// Header returns the accumulated headers as an http.Header with canonical
// keys, for direct attachment to a response.
func (b *Builder) Header() http.Header {
	h := make(http.Header, len(b.headers))
	for name, value := range b.headers {
		h.Set(name, value)
	}
	return h
}

// Apply writes the accumulated headers into an existing http.Header, such as
// a ResponseWriter's.
func (b *Builder) Apply(h http.Header) {
	for name, value := range b.headers {
		h.Set(name, value)
	}
}

// fail records the first chain error and logs it when a logger is installed.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
	LogError(logger, err)
}
