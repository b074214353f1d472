package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/icinema-catalog/internal/config"
    "github.com/iliyamo/icinema-catalog/internal/utils"
)

const testSecret = "test-secret"

func ok(c echo.Context) error { return c.String(http.StatusOK, "ok") }

func serve(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
    req := httptest.NewRequest(method, path, nil)
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    rec := httptest.NewRecorder()
    e.ServeHTTP(rec, req)
    return rec
}

func tokenFor(t *testing.T, role string) string {
    t.Helper()
    tok, err := utils.NewAccessToken(testSecret, utils.Claims{Subject: "1", Email: "a@b.c", Role: role}, 5)
    require.NoError(t, err)
    return tok.Token
}

func TestJWTAuthAndRequireRole(t *testing.T) {
    e := echo.New()
    e.GET("/admin", ok, JWTAuth(testSecret), RequireRole("admin"))

    assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/admin", "").Code)
    assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/admin", "garbage").Code)
    assert.Equal(t, http.StatusForbidden, serve(e, http.MethodGet, "/admin", tokenFor(t, "user")).Code)
    assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/admin", tokenFor(t, "admin")).Code)
}

func TestJWTAuthRejectsForeignSecret(t *testing.T) {
    tok, err := utils.NewAccessToken("other", utils.Claims{Subject: "1", Role: "admin"}, 5)
    require.NoError(t, err)

    e := echo.New()
    e.GET("/me", ok, JWTAuth(testSecret))
    assert.Equal(t, http.StatusUnauthorized, serve(e, http.MethodGet, "/me", tok.Token).Code)
}

func TestLocalLimiterBlocksAfterBurst(t *testing.T) {
    cfg := config.RateLimitConfig{
        Enabled:     true,
        KeyStrategy: "ip_route",
        Prefix:      "rl",
        TTL:         time.Minute,
        LocalRPS:    0.001,
        LocalBurst:  2,
    }
    e := echo.New()
    e.POST("/login", ok, NewTokenBucket(cfg, nil))

    assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/login", "").Code)
    assert.Equal(t, http.StatusOK, serve(e, http.MethodPost, "/login", "").Code)
    rec := serve(e, http.MethodPost, "/login", "")
    assert.Equal(t, http.StatusTooManyRequests, rec.Code)
    assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestDisabledMiddlewaresPassThrough(t *testing.T) {
    e := echo.New()
    e.GET("/x", ok,
        NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil),
        NewRedisCache(config.CacheConfig{Enabled: true}, nil, func() uint64 { return 0 }),
    )
    for i := 0; i < 5; i++ {
        rec := serve(e, http.MethodGet, "/x", "")
        assert.Equal(t, http.StatusOK, rec.Code)
        assert.Empty(t, rec.Header().Get("X-Cache"))
    }
}

func TestCacheKeyIncludesRevision(t *testing.T) {
    cfg := config.CacheConfig{Prefix: "catalog", KeyStrategy: "route_query"}
    e := echo.New()
    c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/movies?q=dark", nil), httptest.NewRecorder())
    c.SetPath("/v1/movies")

    k1 := cacheKeyFrom(cfg, c, 1)
    assert.Equal(t, k1, cacheKeyFrom(cfg, c, 1))
    assert.NotEqual(t, k1, cacheKeyFrom(cfg, c, 2))
    assert.Contains(t, k1, "catalog:1:")

    other := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/movies?q=light", nil), httptest.NewRecorder())
    other.SetPath("/v1/movies")
    assert.NotEqual(t, k1, cacheKeyFrom(cfg, other, 1))
}

func TestCacheKeyIncludesPathParams(t *testing.T) {
    cfg := config.CacheConfig{Prefix: "catalog", KeyStrategy: "route"}
    e := echo.New()
    key := func(id string) string {
        c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/movies/"+id, nil), httptest.NewRecorder())
        c.SetPath("/v1/movies/:id")
        c.SetParamNames("id")
        c.SetParamValues(id)
        return cacheKeyFrom(cfg, c, 3)
    }
    assert.NotEqual(t, key("1"), key("2"))
}

func TestBodyRecorderStopsAtLimit(t *testing.T) {
    out := httptest.NewRecorder()
    w := &bodyRecorder{ResponseWriter: out, status: http.StatusOK, limit: 8}

    _, err := w.Write([]byte("12345"))
    require.NoError(t, err)
    assert.False(t, w.overflow)
    assert.Equal(t, "12345", w.buf.String())

    _, err = w.Write([]byte("6789"))
    require.NoError(t, err)
    assert.True(t, w.overflow)
    assert.Zero(t, w.buf.Len())
    // the client still gets everything
    assert.Equal(t, "123456789", out.Body.String())
}
