package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that compresses HTTP responses using gzip
// for clients that advertise support. Concentration curves and portfolio
// metric payloads compress well.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}
