package streamparser

// headerNames interns the common HTTP/1.x field names so that committing a
// key lexeme for a well-known header does not allocate a new string: the Go
// compiler's mapaccess optimization avoids materializing the []byte->string
// conversion when the map is only read.
var headerNames = map[string]string{
	"Accept":              "Accept",
	"Accept-Charset":      "Accept-Charset",
	"Accept-Encoding":     "Accept-Encoding",
	"Accept-Language":     "Accept-Language",
	"Accept-Ranges":       "Accept-Ranges",
	"Age":                 "Age",
	"Allow":               "Allow",
	"Authorization":       "Authorization",
	"Cache-Control":       "Cache-Control",
	"Connection":          "Connection",
	"Content-Disposition": "Content-Disposition",
	"Content-Encoding":    "Content-Encoding",
	"Content-Language":    "Content-Language",
	"Content-Length":      "Content-Length",
	"Content-Location":    "Content-Location",
	"Content-Range":       "Content-Range",
	"Content-Type":        "Content-Type",
	"Cookie":              "Cookie",
	"Date":                "Date",
	"ETag":                "ETag",
	"Expect":              "Expect",
	"Expires":             "Expires",
	"From":                "From",
	"Host":                "Host",
	"If-Match":            "If-Match",
	"If-Modified-Since":   "If-Modified-Since",
	"If-None-Match":       "If-None-Match",
	"If-Range":            "If-Range",
	"If-Unmodified-Since": "If-Unmodified-Since",
	"Last-Modified":       "Last-Modified",
	"Location":            "Location",
	"Max-Forwards":        "Max-Forwards",
	"Origin":              "Origin",
	"Pragma":              "Pragma",
	"Proxy-Authenticate":  "Proxy-Authenticate",
	"Proxy-Authorization": "Proxy-Authorization",
	"Range":               "Range",
	"Referer":             "Referer",
	"Retry-After":         "Retry-After",
	"Server":              "Server",
	"Set-Cookie":          "Set-Cookie",
	"TE":                  "TE",
	"Trailer":             "Trailer",
	"Transfer-Encoding":   "Transfer-Encoding",
	"Upgrade":             "Upgrade",
	"User-Agent":          "User-Agent",
	"Vary":                "Vary",
	"Via":                 "Via",
	"Warning":             "Warning",
	"WWW-Authenticate":    "WWW-Authenticate",
	"X-Forwarded-For":     "X-Forwarded-For",
	"X-Forwarded-Host":    "X-Forwarded-Host",
	"X-Forwarded-Proto":   "X-Forwarded-Proto",
	"X-Request-ID":        "X-Request-ID",
	"X-Real-IP":           "X-Real-IP",
}

// internHeaderName returns an interned string for known header names,
// avoiding allocation; unknown names fall back to a plain conversion.
func internHeaderName(b []byte) string {
	if s, ok := headerNames[string(b)]; ok {
		return s
	}
	return string(b)
}
