package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build information, set at build time via ldflags:
//
//	go build -ldflags "-X github.com/teranos/jobs/version.Version=v1.2.0 -X github.com/teranos/jobs/version.CommitHash=$(git rev-parse HEAD)"
var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information. Values not injected by
// ldflags fall back to what `go install` recorded in the binary.
func Get() Info {
	info := Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.CommitHash == "dev" {
				info.CommitHash = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("jobs %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// Short returns the abbreviated commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
