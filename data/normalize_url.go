package data

import (
	"regexp"
	"strings"
)

const (
	defaultScheme  = "https:"
	rawContentHost = "https://raw.githubusercontent.com/"
)

var gitHubBlobRegexp = regexp.MustCompile(`(?i)^https?://github\.com/([^/]+)/([^/]+)/blob/([^/]+)/(.+)$`)

// NormalizeUrl fixes common image URL mistakes: protocol-relative and bare www
// hosts, GitHub blob view links and unescaped spaces. Values that are not
// strings, or that are empty after trimming, are not normalized.
func NormalizeUrl(v any) (string, bool) {

	s, ok := v.(string)
	if !ok {
		return "", false
	}

	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "//") {
		s = defaultScheme + s
	}

	if len(s) >= 4 && strings.EqualFold(s[:4], "www.") {
		s = defaultScheme + "//" + s
	}

	if m := gitHubBlobRegexp.FindStringSubmatch(s); m != nil {
		owner, repo, branch, path := m[1], m[2], m[3], m[4]
		s = rawContentHost + strings.Join([]string{owner, repo, branch, path}, "/")
	}

	s = strings.ReplaceAll(s, " ", "%20")

	if s == "" {
		return "", false
	}

	return s, true
}

// ImageSrc picks the image source for a record: the normalized img value,
// then the raw img string, then the placeholder.
func ImageSrc(gr GameRecord, placeholder string) string {
	if src, ok := NormalizeUrl(gr.Raw(ImgProperty)); ok {
		return src
	}
	if raw, ok := gr.GetString(ImgProperty); ok {
		return raw
	}
	return placeholder
}
