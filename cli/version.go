package cli

import (
	"fmt"
	"net/url"
	"runtime/debug"
)

var (
	GitTag string
)

func VersionHandler(_ *url.URL) error {
	fmt.Println(Version())
	return nil
}

// Version is the git tag set at build time, or module build info otherwise.
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi.String()
	}
	return "unknown version"
}
