package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/icinema-catalog/internal/catalog"
	"github.com/iliyamo/icinema-catalog/internal/config"
	"github.com/iliyamo/icinema-catalog/internal/model"
	"github.com/iliyamo/icinema-catalog/internal/notify"
	"github.com/iliyamo/icinema-catalog/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.  Credentials are
// never checked: the store's mock login decides the role from the email.
type AuthHandler struct {
	Cfg    config.Config
	Store  *catalog.Store
	Recent *notify.Recorder // backs GET /v1/notifications; may be nil
}

func NewAuthHandler(cfg config.Config, store *catalog.Store, recent *notify.Recorder) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: store, Recent: recent}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	User   model.User `json:"user"`
	Access tokenPart  `json:"access"`
}

// Login: fabricate the session user and hand back an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	u := h.Store.Login(c.Request().Context(), req.Email, req.Password)
	return h.issue(c, http.StatusOK, u)
}

// Signup: always creates a regular user.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password/name required"})
	}

	u := h.Store.Signup(c.Request().Context(), req.Email, req.Password, req.Name)
	return h.issue(c, http.StatusCreated, u)
}

// Logout clears the session slot.  Issued tokens stay valid until expiry.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Store.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session returns the user currently in the store's slot, or 204 when
// nobody is logged in.
func (h *AuthHandler) Session(c echo.Context) error {
	u, ok := h.Store.CurrentUser()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, u)
}

// Me echoes the identity carried by the bearer token.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"id":    c.Get("user_id"),
		"email": c.Get("email"),
		"role":  c.Get("role"),
	})
}

// Notifications lists recent notifications, oldest first.
func (h *AuthHandler) Notifications(c echo.Context) error {
	items := []notify.Notification{}
	if h.Recent != nil {
		items = h.Recent.All()
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AuthHandler) issue(c echo.Context, status int, u model.User) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, utils.Claims{
		Subject: u.ID,
		Email:   u.Email,
		Role:    string(u.Role),
	}, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(status, authResp{
		User:   u,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
