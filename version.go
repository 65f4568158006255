package cutaffix

import (
	"github.com/Masterminds/semver"
	"github.com/arran4/cutaffix/errors"
)

// DefaultTagPrefixes are tried when TagVersion is given no prefixes.
var DefaultTagPrefixes = []string{"v"}

// TagVersion cuts the first matching tag prefix from tag and parses what is
// left as a semantic version. A tag without any of the prefixes is parsed
// as is.
func TagVersion(tag string, prefixes ...string) (*semver.Version, error) {
	if len(prefixes) == 0 {
		prefixes = DefaultTagPrefixes
	}
	version := CutPrefixes(tag, prefixes...)
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidVersion, "tag %s: %v", tag, err)
	}
	return v, nil
}

// TagPrefix returns the part of tag in front of version, so that
// TagPrefix("release-1.2.0", "1.2.0") is "release-".
func TagPrefix(tag, version string) (string, bool) {
	return CutSuffixFound(tag, Single(version))
}
