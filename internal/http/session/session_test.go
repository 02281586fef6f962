package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CookieAttributes(t *testing.T) {
	ttl := 7 * 24 * time.Hour
	c := New("signed-token", ttl)

	assert.Equal(t, CookieName, c.Name)
	assert.Equal(t, "signed-token", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, int(ttl.Seconds()), c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
}

// Сброс обязан повторять атрибуты установки, иначе браузер не удалит cookie.
func TestClear_AttributesMatchNew(t *testing.T) {
	set := New("token-value", time.Hour)
	clear := Clear()

	assert.Equal(t, set.Name, clear.Name)
	assert.Equal(t, set.Path, clear.Path)
	assert.Equal(t, set.HttpOnly, clear.HttpOnly)
	assert.Equal(t, set.Secure, clear.Secure)
	assert.Equal(t, set.SameSite, clear.SameSite)

	assert.Empty(t, clear.Value)
	assert.Negative(t, clear.MaxAge)
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
		want   string
	}{
		{
			name:   "cookie present",
			cookie: New("abc123", time.Hour),
			want:   "abc123",
		},
		{
			name:   "cookie absent",
			cookie: nil,
			want:   "",
		},
		{
			name:   "foreign cookie",
			cookie: &http.Cookie{Name: "other", Value: "zzz"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}
			require.Equal(t, tt.want, FromRequest(r))
		})
	}
}
