// Package version exposes the roster build version.
package version

// version is overridden at build time via
// -ldflags "-X github.com/rshade/roster/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Set by the linker at build time

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
