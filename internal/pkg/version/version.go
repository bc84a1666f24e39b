package version

import "runtime/debug"

// Set at build time:
//
//	go build -ldflags "-X cadastro-rural/internal/pkg/version.tag=$(git describe --tags)"
var (
	tag    = "none"
	branch = "unknown"
	commit = ""
	dirty  = ""
)

type gitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

// GetGitInfo returns the git metadata of this build.
// Commit and dirty state fall back to the VCS stamp the Go toolchain embeds.
func GetGitInfo() gitInfo {
	info := gitInfo{
		Commit: commit,
		Branch: branch,
		Tag:    tag,
		Dirty:  dirty == "dirty",
	}

	if info.Commit != "" {
		return info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		info.Commit = "unknown"
		return info
	}
	info.Commit = "unknown"
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}
