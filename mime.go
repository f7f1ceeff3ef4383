package herald

import (
	"path/filepath"
	"strings"
)

// ContentType is a short token selecting a fixed MIME string.
type ContentType string

const (
	TypeHTML     ContentType = "html"
	TypeCSS      ContentType = "css"
	TypeJS       ContentType = "javascript"
	TypeJSON     ContentType = "json"
	TypeXML      ContentType = "xml"
	TypeText     ContentType = "text"
	TypeCSV      ContentType = "csv"
	TypeMarkdown ContentType = "markdown"

	TypePNG  ContentType = "png"
	TypeJPEG ContentType = "jpeg"
	TypeGIF  ContentType = "gif"
	TypeSVG  ContentType = "svg"
	TypeWebP ContentType = "webp"
	TypeIcon ContentType = "icon"
	TypeBMP  ContentType = "bmp"

	TypeWOFF  ContentType = "woff"
	TypeWOFF2 ContentType = "woff2"
	TypeTTF   ContentType = "truetype"
	TypeEOT   ContentType = "embedded-opentype"
	TypeOTF   ContentType = "opentype"

	TypeMP4  ContentType = "mp4"
	TypeWebM ContentType = "webm"
	TypeOgg  ContentType = "ogg"
	TypeMPEG ContentType = "mpeg"
	TypeWAV  ContentType = "wav"
	TypeFLAC ContentType = "flac"

	TypePDF  ContentType = "pdf"
	TypeZip  ContentType = "zip"
	TypeTar  ContentType = "tar"
	TypeGzip ContentType = "gzip"
)

var mimeTypes = map[ContentType]string{
	TypeHTML:     "text/html; charset=utf-8",
	TypeCSS:      "text/css; charset=utf-8",
	TypeJS:       "application/javascript; charset=utf-8",
	TypeJSON:     "application/json; charset=utf-8",
	TypeXML:      "application/xml; charset=utf-8",
	TypeText:     "text/plain; charset=utf-8",
	TypeCSV:      "text/csv; charset=utf-8",
	TypeMarkdown: "text/markdown; charset=utf-8",
	TypePNG:      "image/png",
	TypeJPEG:     "image/jpeg",
	TypeGIF:      "image/gif",
	TypeSVG:      "image/svg+xml",
	TypeWebP:     "image/webp",
	TypeIcon:     "image/x-icon",
	TypeBMP:      "image/bmp",
	TypeWOFF:     "font/woff",
	TypeWOFF2:    "font/woff2",
	TypeTTF:      "font/ttf",
	TypeEOT:      "application/vnd.ms-fontobject",
	TypeOTF:      "font/otf",
	TypeMP4:      "video/mp4",
	TypeWebM:     "video/webm",
	TypeOgg:      "video/ogg",
	TypeMPEG:     "audio/mpeg",
	TypeWAV:      "audio/wav",
	TypeFLAC:     "audio/flac",
	TypePDF:      "application/pdf",
	TypeZip:      "application/zip",
	TypeTar:      "application/x-tar",
	TypeGzip:     "application/gzip",
}

// Legacy file extensions that do not spell a ContentType token themselves.
var extensionAliases = map[string]ContentType{
	"htm": TypeHTML,
	"js":  TypeJS,
	"txt": TypeText,
	"md":  TypeMarkdown,
	"jpg": TypeJPEG,
	"ico": TypeIcon,
	"ttf": TypeTTF,
	"eot": TypeEOT,
	"otf": TypeOTF,
	"mp3": TypeMPEG,
	"gz":  TypeGzip,
}

// MIMEType returns the MIME string for a content-type token. Unknown tokens
// resolve to application/octet-stream rather than an error so callers can pass
// through arbitrary tokens safely.
func MIMEType(token ContentType) string {
	if mime, ok := mimeTypes[token]; ok {
		return mime
	}
	return ContentTypeOctetStream
}

// MIMETypeForPath resolves a file path to a MIME string by its extension
// (last dot segment, case-insensitive). Paths without an extension map to
// application/octet-stream.
func MIMETypeForPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return ContentTypeOctetStream
	}
	if alias, ok := extensionAliases[ext]; ok {
		return mimeTypes[alias]
	}
	return MIMEType(ContentType(ext))
}
