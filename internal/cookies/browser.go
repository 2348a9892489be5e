package cookies

import (
	"context"
	"fmt"
	"strings"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/chrome"
	_ "github.com/browserutils/kooky/browser/chromium"
	_ "github.com/browserutils/kooky/browser/edge"
	_ "github.com/browserutils/kooky/browser/firefox"
	_ "github.com/browserutils/kooky/browser/opera"
)

// SupportedBrowsers lists the browsers cookies can be extracted from
func SupportedBrowsers() []string {
	return []string{"chrome", "chromium", "firefox", "edge", "opera"}
}

// ExtractOptions controls browser cookie extraction
type ExtractOptions struct {
	Browser string // optional browser name filter (chrome, firefox, ...)
	Domain  string // domain suffix to filter cookies (e.g. "beacon.tv")
}

// Extract reads cookies for a domain out of an installed browser's cookie
// store. Used to bootstrap a session without a separate login flow: the user
// signs in with their browser and beacon-dl borrows the session cookie.
func Extract(ctx context.Context, opts ExtractOptions) ([]NetscapeCookie, error) {
	var filters []kooky.Filter
	if opts.Domain != "" {
		filters = append(filters, kooky.DomainHasSuffix(opts.Domain))
	}

	browserCookies, err := kooky.ReadCookies(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("failed to read browser cookies: %w", err)
	}

	browser := strings.ToLower(opts.Browser)

	var cookies []NetscapeCookie
	for _, cookie := range browserCookies {
		if browser != "" && cookie.Browser != nil {
			if !strings.Contains(strings.ToLower(cookie.Browser.Browser()), browser) {
				continue
			}
		}

		domain := cookie.Domain
		if domain != "" && !strings.HasPrefix(domain, ".") {
			domain = "." + domain
		}

		flag := "FALSE"
		if cookie.HttpOnly {
			flag = "TRUE"
		}

		expiration := cookie.Expires.Unix()
		if expiration < 0 {
			expiration = 0
		}

		cookies = append(cookies, NetscapeCookie{
			Domain:     domain,
			Flag:       flag,
			Path:       cookie.Path,
			Secure:     cookie.Secure,
			Expiration: expiration,
			Name:       cookie.Name,
			Value:      cookie.Value,
		})
	}

	if len(cookies) == 0 {
		return nil, fmt.Errorf("no cookies found for domain %q", opts.Domain)
	}

	return cookies, nil
}
