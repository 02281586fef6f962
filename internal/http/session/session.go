// Package session определяет транспортный контракт сессионной cookie:
// имя, атрибуты и правила установки/сброса.
//
// Cookie ставится с HttpOnly, Secure и SameSite=None. Сброс обязан
// повторять те же атрибуты: браузеры молча игнорируют удаление cookie
// с несовпадающими атрибутами.
package session

import (
	"net/http"
	"time"
)

// CookieName — имя cookie, в которой передаётся сессионный токен.
const CookieName = "token"

// New возвращает сессионную cookie с токеном и сроком жизни ttl.
func New(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// Clear возвращает cookie, удаляющую сессию: атрибуты совпадают с New,
// MaxAge отрицательный.
func Clear() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// FromRequest извлекает сессионный токен из cookie запроса.
// Возвращает пустую строку, если cookie отсутствует.
func FromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
