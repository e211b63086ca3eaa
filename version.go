package routeruntime

import (
	"github.com/coreos/go-semver/semver"
)

// VersionString is the library version in semver form. The major component
// doubles as the ABI generation: any binary built against a different major
// must be treated as incompatible.
const VersionString = "1.2.0"

var libraryVersion = semver.New(VersionString)

// Version returns the library version string.
func Version() string {
	return VersionString
}

// VersionMajor returns the major version component.
func VersionMajor() int64 {
	return libraryVersion.Major
}

// VersionMinor returns the minor version component.
func VersionMinor() int64 {
	return libraryVersion.Minor
}

// VersionPatch returns the patch version component.
func VersionPatch() int64 {
	return libraryVersion.Patch
}

// IsABICompatible reports whether a caller built against version v can use
// this library. Compatibility is major-version equality, except in the 0.x
// range where minors must also match (semver makes no stability promise
// across 0.x minors). An unparseable version string is never compatible.
func IsABICompatible(v string) bool {
	other, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return abiCompatible(libraryVersion, other)
}

func abiCompatible(a, b *semver.Version) bool {
	if a.Major != b.Major {
		return false
	}
	if a.Major == 0 {
		return a.Minor == b.Minor
	}
	return true
}
