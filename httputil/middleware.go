package httputil

import (
	"net/http"
	"time"

	"github.com/coreos/go-zlib/capnslog"
)

var plog = capnslog.NewPackageLogger("github.com/coreos/go-zlib", "httputil")

// LoggingMiddleware wraps an http.Handler, logging each request's method,
// URL, and latency through capnslog once Next has served it.
type LoggingMiddleware struct {
	Next http.Handler
}

func (l *LoggingMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	l.Next.ServeHTTP(w, r)
	plog.Infof("HTTP %s %v %v", r.Method, r.URL, time.Since(start))
}
