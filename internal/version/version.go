package version

const UnknownVersion = "unknown"

// Filled in through -ldflags at build time.
var (
	GitCommit string // commit hash the binary was built from
	GitBranch string // branch name at build time
	GitTag    string // tag name, when the commit is tagged
	GitState  string // "clean" or "dirty"
	BuildDate string // UTC build timestamp, RFC3339
	Version   string // release version, when set explicitly
	GoVersion string // go toolchain used for the build
)

// AppVersion picks the most specific version identifier available.
func AppVersion() string {
	if GitTag != "" {
		return GitTag
	}
	if Version != "" {
		return Version
	}
	return UnknownVersion
}
