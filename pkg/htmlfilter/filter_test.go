package htmlfilter_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xsskit/pkg/htmlfilter"
)

func TestFilterHTML(t *testing.T) {
	t.Parallel()

	policy := htmlfilter.New()

	t.Run("keeps allowlisted markup", func(t *testing.T) {
		t.Parallel()

		out := policy.FilterHTML("<p>hello <b>world</b></p>")
		assert.Equal(t, "<p>hello <b>world</b></p>", out)
	})

	t.Run("strips script elements", func(t *testing.T) {
		t.Parallel()

		out := policy.FilterHTML(`<script>alert(1)</script><b>bold</b>`)
		assert.Equal(t, "<b>bold</b>", out)
	})

	t.Run("strips event handlers", func(t *testing.T) {
		t.Parallel()

		out := policy.FilterHTML(`<b onmouseover="alert(1)">x</b>`)
		assert.Equal(t, "<b>x</b>", out)
	})

	t.Run("drops javascript hrefs", func(t *testing.T) {
		t.Parallel()

		out := policy.FilterHTML(`<a href="javascript:alert(1)">x</a>`)
		assert.NotContains(t, out, "javascript")
	})
}

func TestFilterContexts(t *testing.T) {
	t.Parallel()

	policy := htmlfilter.New()

	assert.Equal(t, "<b>x</b>", policy.Filter(htmlfilter.ContextHTML, "<b>x</b>"))
	assert.Equal(t, "x", policy.Filter(htmlfilter.ContextPlain, "<b>x</b>"))
	// Unknown contexts get the strict treatment.
	assert.Equal(t, "x", policy.Filter(htmlfilter.Context(99), "<b>x</b>"))
}

func TestIsValidHref(t *testing.T) {
	t.Parallel()

	policy := htmlfilter.New()

	tests := []struct {
		name  string
		href  string
		valid bool
	}{
		{name: "https", href: "https://example.com/page", valid: true},
		{name: "http", href: "http://example.com/", valid: true},
		{name: "mailto", href: "mailto:user@example.com", valid: true},
		{name: "relative path", href: "/content/page.html", valid: true},
		{name: "query and fragment", href: "/page?a=1#top", valid: true},
		{name: "javascript scheme", href: "javascript:alert(1)", valid: false},
		{name: "vbscript scheme", href: "vbscript:msgbox(1)", valid: false},
		{name: "data uri", href: "data:text/html;base64,PHNjcmlwdD4=", valid: false},
		{name: "empty", href: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.valid, policy.IsValidHref(tt.href))
		})
	}
}

func TestIsValidHrefCustomPolicy(t *testing.T) {
	t.Parallel()

	t.Run("restricted schemes", func(t *testing.T) {
		t.Parallel()

		policy := htmlfilter.New(htmlfilter.WithURLSchemes("https"))
		assert.True(t, policy.IsValidHref("https://example.com/"))
		assert.False(t, policy.IsValidHref("http://example.com/"))
	})

	t.Run("no relative urls", func(t *testing.T) {
		t.Parallel()

		policy := htmlfilter.New(htmlfilter.WithRelativeURLs(false))
		assert.False(t, policy.IsValidHref("/content/page.html"))
		assert.True(t, policy.IsValidHref("https://example.com/"))
	})

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		policy := htmlfilter.New(htmlfilter.WithConfig(htmlfilter.Config{
			AllowedURLSchemes: []string{"ftp"},
		}))
		assert.True(t, policy.IsValidHref("ftp://example.com/file"))
		assert.False(t, policy.IsValidHref("https://example.com/"))
		assert.False(t, policy.IsValidHref("/relative"))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("XSSKIT_ALLOWED_URL_SCHEMES", "https,mailto")
	t.Setenv("XSSKIT_ALLOW_RELATIVE_URLS", "false")

	cfg, err := htmlfilter.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https", "mailto"}, cfg.AllowedURLSchemes)
	assert.False(t, cfg.AllowRelativeURLs)
	assert.False(t, cfg.AllowDataURIImages)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := htmlfilter.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"http", "https", "mailto", "ftp", "tel"}, cfg.AllowedURLSchemes)
	assert.True(t, cfg.AllowRelativeURLs)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := writeTempPolicy(t, strings.Join([]string{
			"allowed_url_schemes:",
			"  - https",
			"allow_relative_urls: false",
		}, "\n"))

		cfg, err := htmlfilter.LoadConfigFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"https"}, cfg.AllowedURLSchemes)
		assert.False(t, cfg.AllowRelativeURLs)
	})

	t.Run("omitted keys keep defaults", func(t *testing.T) {
		t.Parallel()

		path := writeTempPolicy(t, "allow_data_uri_images: true")

		cfg, err := htmlfilter.LoadConfigFile(path)
		require.NoError(t, err)
		assert.True(t, cfg.AllowDataURIImages)
		assert.Equal(t, []string{"http", "https", "mailto", "ftp", "tel"}, cfg.AllowedURLSchemes)
		assert.True(t, cfg.AllowRelativeURLs)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := htmlfilter.LoadConfigFile("does-not-exist.yaml")
		assert.ErrorIs(t, err, htmlfilter.ErrReadPolicyFile)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeTempPolicy(t, "allowed_url_schemes: [unclosed")

		_, err := htmlfilter.LoadConfigFile(path)
		assert.ErrorIs(t, err, htmlfilter.ErrParsePolicyFile)
	})
}

func writeTempPolicy(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
