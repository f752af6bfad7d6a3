// Package version exposes build metadata, overridable at link time with
// -ldflags "-X github.com/datagrade/datagrade/version.version=...".
package version

//nolint:gochecknoglobals // set via ldflags
var (
	name    = "datagrade"
	version = "dev"
	commit  = "unknown"
)

func Name() string {
	return name
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}
