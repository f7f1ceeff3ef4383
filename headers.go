package herald

// HeaderName constants for type-safe header operations
const (
	HeaderContentType        = "Content-Type"
	HeaderContentLength      = "Content-Length"
	HeaderContentEncoding    = "Content-Encoding"
	HeaderContentDisposition = "Content-Disposition"
	HeaderCacheControl       = "Cache-Control"
	HeaderExpires            = "Expires"
	HeaderETag               = "ETag"
	HeaderLastModified       = "Last-Modified"
	HeaderLocation           = "Location"
	HeaderVary               = "Vary"
	HeaderXRequestID         = "X-Request-ID"
	HeaderXRedirectType      = "X-Redirect-Type"

	// CORS response headers
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"
	HeaderMaxAge           = "Access-Control-Max-Age"

	// Security headers
	HeaderCSP                 = "Content-Security-Policy"
	HeaderHSTS                = "Strict-Transport-Security"
	HeaderXContentTypeOptions = "X-Content-Type-Options"
	HeaderXFrameOptions       = "X-Frame-Options"
	HeaderXXSSProtection      = "X-XSS-Protection"
)

// Common header values
const (
	ContentTypeJSON        = "application/json; charset=utf-8"
	ContentTypeHTML        = "text/html; charset=utf-8"
	ContentTypePlain       = "text/plain; charset=utf-8"
	ContentTypeOctetStream = "application/octet-stream"

	nosniffValue       = "nosniff"
	xssProtectionValue = "1; mode=block"
	frameOptionsValue  = "SAMEORIGIN"
)

// Content-Encoding tokens accepted by Compress
const (
	EncodingGzip    = "gzip"
	EncodingBrotli  = "br"
	EncodingDeflate = "deflate"
)
