package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/interviewdesk/dashboard/internal/core/domain"
)

// FlashCookie carries a one-shot notice across a redirect.
const FlashCookie = "imd_flash"

// SetFlash stores notice for the next request that consumes it.
func SetFlash(c echo.Context, notice domain.Notice, secure bool) {
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     FlashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ConsumeFlash returns the pending notice, if any, and clears it so it is
// shown only once.
func ConsumeFlash(c echo.Context, secure bool) *domain.Notice {
	ck, err := c.Cookie(FlashCookie)
	if err != nil || ck.Value == "" {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return nil
	}
	var notice domain.Notice
	if err := json.Unmarshal(raw, &notice); err != nil || notice.Message == "" {
		return nil
	}
	return &notice
}
