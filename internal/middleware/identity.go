package middleware

// identity.go holds the helper shared by the rate limiter for naming the
// caller.  JWTAuth stores the subject under "user_id"; unauthenticated
// requests are "anon".

import (
    "github.com/labstack/echo/v4"
)

func currentUserID(c echo.Context) string {
    if s, ok := c.Get("user_id").(string); ok && s != "" {
        return s
    }
    return "anon"
}
