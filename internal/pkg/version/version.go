package version

import _ "embed"

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- && printf clean > dirty.txt || printf dirty > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// GitInfo describes the state of the working tree the binary was built from.
type GitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

// Get returns the git metadata embedded at build time.
func Get() GitInfo {
	return GitInfo{
		Commit: commit,
		Branch: branch,
		Tag:    tag,
		Dirty:  dirty == "dirty",
	}
}
