package cutaffix

// DefaultContainerSuffixes are the release file extensions StripContainerSuffix
// removes. Compound extensions come before their tails so ".tar.gz" is taken
// whole rather than leaving ".tar" behind.
var DefaultContainerSuffixes = []string{
	".tar.gz",
	".tar.bz2",
	".tar.xz",
	".tar.zst",
	".tgz",
	".tbz2",
	".txz",
	".zip",
	".gz",
	".bz2",
	".xz",
	".zst",
	".tar",
	".AppImage",
	".deb",
	".rpm",
	".exe",
	".dmg",
	".pkg",
}

// StripContainerSuffix removes the first matching suffix from name and
// returns the base name and the suffix that was removed. With no suffixes
// given DefaultContainerSuffixes is used. An unmatched name is returned whole
// with an empty suffix.
func StripContainerSuffix(name string, suffixes ...string) (base, suffix string) {
	if len(suffixes) == 0 {
		suffixes = DefaultContainerSuffixes
	}
	base, found := CutSuffixFound(name, AnyOf(suffixes...))
	if !found {
		return name, ""
	}
	return base, name[len(base):]
}
