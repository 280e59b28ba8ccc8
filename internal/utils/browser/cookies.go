// Package browser exports cookies from installed browsers for use by
// yt-dlp. Useful for links which require authentication.
package browser

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"audiozip/internal/utils/logging"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all"
)

// cookieFileName is the Netscape-format file written into the export dir.
const cookieFileName = "cookies.txt"

// ExportDir creates a private directory for the cookie file. It must sit
// outside the download workspace: the workspace is emptied on the first
// bundle download, and the exported file is referenced for the whole
// process lifetime.
func ExportDir() (string, error) {
	dir, err := os.MkdirTemp("", "audiozip-cookies-*")
	if err != nil {
		return "", fmt.Errorf("failed to create cookie directory: %w", err)
	}
	return dir, nil
}

// ExportCookies reads cookies for the given link's base domain from the
// named browser (or from every detected store when browserName is empty)
// and writes them to a Netscape-format file inside targetDir (normally an
// ExportDir). Returns the file path, or an error when no cookies could be
// collected.
func ExportCookies(targetDir, browserName, link string) (string, error) {
	domain, err := extractBaseDomain(link)
	if err != nil {
		return "", fmt.Errorf("failed to extract base domain: %w", err)
	}

	stores := kooky.FindAllCookieStores()
	if len(stores) == 0 {
		return "", fmt.Errorf("no browser cookie stores detected")
	}

	var collected []*kooky.Cookie
	for _, store := range stores {
		name := store.Browser()
		if browserName != "" && !strings.EqualFold(name, browserName) {
			continue
		}

		cookies, err := store.ReadCookies(kooky.Valid, kooky.Domain(domain))
		if err != nil {
			logging.D(2, "Failed to read cookies from %s: %v", name, err)
			continue
		}
		if len(cookies) > 0 {
			logging.I("Read %d cookies from %s for domain %s", len(cookies), name, domain)
			collected = append(collected, cookies...)
		}
	}

	if len(collected) == 0 {
		return "", fmt.Errorf("no cookies found for domain %q", domain)
	}

	fpath := filepath.Join(targetDir, cookieFileName)
	if err := writeNetscapeFile(fpath, collected); err != nil {
		return "", err
	}
	return fpath, nil
}

// writeNetscapeFile writes cookies in the Netscape format yt-dlp accepts.
func writeNetscapeFile(fpath string, cookies []*kooky.Cookie) error {
	var b strings.Builder
	b.WriteString("# Netscape HTTP Cookie File\n")

	for _, c := range cookies {
		includeSub := "FALSE"
		if strings.HasPrefix(c.Domain, ".") {
			includeSub = "TRUE"
		}
		secure := "FALSE"
		if c.Secure {
			secure = "TRUE"
		}
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			c.Domain, includeSub, c.Path, secure, c.Expires.Unix(), c.Name, c.Value)
	}

	if err := os.WriteFile(fpath, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write cookie file %q: %w", fpath, err)
	}
	return nil
}

// extractBaseDomain parses a URL and extracts its base domain.
func extractBaseDomain(link string) (string, error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return "", err
	}

	parts := strings.Split(parsed.Hostname(), ".")
	if len(parts) > 2 {
		return strings.Join(parts[len(parts)-2:], "."), nil
	}
	return parsed.Hostname(), nil
}
