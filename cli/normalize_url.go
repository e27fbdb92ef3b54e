package cli

import (
	"fmt"
	"github.com/arelate/gamesort/data"
	"io"
	"net/url"
	"os"
)

const notAvailable = "n/a"

// NormalizeUrlHandler takes the url argument as a single value, commas are
// valid URL characters and are not treated as separators here.
func NormalizeUrlHandler(u *url.URL) error {
	return normalizeUrlArg(os.Stdout, u)
}

func normalizeUrlArg(w io.Writer, u *url.URL) error {
	return NormalizeUrls(w, u.Query().Get("url"))
}

func NormalizeUrls(w io.Writer, urls ...string) error {
	for _, rawUrl := range urls {
		normalized, ok := data.NormalizeUrl(rawUrl)
		if !ok {
			normalized = notAvailable
		}
		if _, err := fmt.Fprintf(w, "%s -> %s\n", rawUrl, normalized); err != nil {
			return err
		}
	}
	return nil
}
