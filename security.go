package herald

import "strconv"

// SecurityOptions configures one Security call. Nil pointer fields mean
// "enabled with the default value"; the zero value therefore applies the full
// default header set.
type SecurityOptions struct {
	CSP                 string // Content-Security-Policy, emitted only when set
	HSTS                *bool  // nil or true enables Strict-Transport-Security
	HSTSMaxAge          int    // seconds, 0 means 31536000 (one year)
	NoSniff             *bool  // nil or true emits X-Content-Type-Options: nosniff
	FrameOptions        string // X-Frame-Options value, "" means SAMEORIGIN
	DisableFrameOptions bool   // suppress X-Frame-Options entirely
	XSSProtection       *bool  // nil or true emits X-XSS-Protection: 1; mode=block
}

const defaultHSTSMaxAge = 31536000

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

// apply writes the resolved security headers into the target map.
func (o SecurityOptions) apply(headers map[string]string) {
	if o.CSP != "" {
		headers[HeaderCSP] = o.CSP
	}

	if enabled(o.HSTS) {
		maxAge := o.HSTSMaxAge
		if maxAge <= 0 {
			maxAge = defaultHSTSMaxAge
		}
		headers[HeaderHSTS] = "max-age=" + strconv.Itoa(maxAge)
	}

	if enabled(o.NoSniff) {
		headers[HeaderXContentTypeOptions] = nosniffValue
	}

	if !o.DisableFrameOptions {
		value := o.FrameOptions
		if value == "" {
			value = frameOptionsValue
		}
		headers[HeaderXFrameOptions] = value
	}

	if enabled(o.XSSProtection) {
		headers[HeaderXXSSProtection] = xssProtectionValue
	}
}
