package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		url         string
		cookie      string
		accept      string
		wantTag     language.Tag
		wantPersist bool
	}{
		{name: "default", url: "/admin", wantTag: language.Korean},
		{name: "query param", url: "/admin?lang=en", wantTag: language.English, wantPersist: true},
		{name: "cookie", url: "/admin", cookie: "en", wantTag: language.English},
		{name: "accept language", url: "/admin", accept: "en-US,en;q=0.9", wantTag: language.English},
		{name: "unsupported falls back", url: "/admin", accept: "ja-JP", wantTag: language.Korean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}

			tag, persist := ResolveTag(req, Default())
			assert.Equal(t, tt.wantTag, tag)
			assert.Equal(t, tt.wantPersist, persist)
		})
	}
}

func TestPrinter_ParticipantCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "120명", Printer(language.Korean).Sprintf(KeyParticipantCount, "120"))
	assert.Equal(t, "120 participants", Printer(language.English).Sprintf(KeyParticipantCount, "120"))
	assert.Equal(t, "3847명", Printer(language.Korean).Sprintf(KeyParticipantCount, "3847"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, language.English, Parse("en-US"))
	assert.Equal(t, language.Korean, Parse("ko"))
	assert.Equal(t, language.Korean, Parse(""))
	assert.Equal(t, language.Korean, Parse("!!"))
}
