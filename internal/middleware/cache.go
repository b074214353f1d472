package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/icinema-catalog/internal/config"
)

// RevisionHeader tells clients which catalog revision produced a response.
const RevisionHeader = "X-Catalog-Revision"

// cachedResponse is what gets stored in Redis for one catalog view.
type cachedResponse struct {
    Status      int    `json:"status"`
    ContentType string `json:"content_type"`
    Body        []byte `json:"body"`
}

// bodyRecorder tees the response body (up to limit bytes) while it is
// written to the client.  overflow is set once the body outgrows limit.
type bodyRecorder struct {
    http.ResponseWriter
    status   int
    buf      bytes.Buffer
    limit    int
    overflow bool
}

func (w *bodyRecorder) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
    if !w.overflow {
        if w.limit > 0 && w.buf.Len()+len(b) > w.limit {
            w.overflow = true
            w.buf.Reset()
        } else {
            w.buf.Write(b)
        }
    }
    return w.ResponseWriter.Write(b)
}

// cacheKeyFrom builds "<prefix>:<rev>:<sha1>" where the digest covers the
// request parts selected by cfg.KeyStrategy.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context, rev uint64) string {
    r := c.Request()
    var parts []string
    switch strings.ToLower(cfg.KeyStrategy) {
    case "route":
        parts = []string{"route", c.Path()}
    case "method_route":
        parts = []string{"method", r.Method, "route", c.Path()}
    case "method_route_query":
        parts = []string{"method", r.Method, "route", c.Path(), "q", r.URL.RawQuery}
    default: // "route_query"
        parts = []string{"route", c.Path(), "q", r.URL.RawQuery}
    }
    // path params are part of the URL, not of c.Path()
    for _, v := range c.ParamValues() {
        parts = append(parts, "p", v)
    }
    sum := sha1.Sum([]byte(strings.Join(parts, ":")))
    return fmt.Sprintf("%s:%d:%x", cfg.Prefix, rev, sum[:])
}

// NewRedisCache caches successful catalog reads in Redis.  revision reports
// the store's current revision and is part of every key, so a mutation makes
// all earlier entries unreachable and they simply age out after cfg.TTL.
// Clients may bypass the cache with "Cache-Control: no-cache".
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client, revision func() uint64) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil || revision == nil {
        return passThrough
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 5 * time.Minute
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            req := c.Request()
            if !cfg.Methods[strings.ToUpper(req.Method)] || strings.Contains(req.Header.Get("Cache-Control"), "no-cache") {
                return next(c)
            }

            rev := revision()
            key := cacheKeyFrom(cfg, c, rev)
            res := c.Response()
            res.Header().Set(RevisionHeader, strconv.FormatUint(rev, 10))

            if hit, ok := lookup(req.Context(), rdb, key); ok {
                res.Header().Set("X-Cache", "HIT")
                if hit.ContentType != "" {
                    res.Header().Set(echo.HeaderContentType, hit.ContentType)
                }
                res.WriteHeader(hit.Status)
                _, err := res.Write(hit.Body)
                return err
            }

            rec := &bodyRecorder{ResponseWriter: res.Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
            res.Writer = rec
            res.Header().Set("X-Cache", "MISS")
            if err := next(c); err != nil {
                return err
            }
            if rec.status != http.StatusOK || rec.overflow {
                return nil
            }

            entry := cachedResponse{
                Status:      rec.status,
                ContentType: res.Header().Get(echo.HeaderContentType),
                Body:        rec.buf.Bytes(),
            }
            if bs, err := json.Marshal(entry); err == nil {
                _ = rdb.SetEx(context.Background(), key, bs, ttl).Err()
            }
            return nil
        }
    }
}

func lookup(ctx context.Context, rdb *redis.Client, key string) (cachedResponse, bool) {
    bs, err := rdb.Get(ctx, key).Bytes()
    if err != nil {
        return cachedResponse{}, false
    }
    var hit cachedResponse
    if err := json.Unmarshal(bs, &hit); err != nil || hit.Status == 0 {
        return cachedResponse{}, false
    }
    return hit, true
}
