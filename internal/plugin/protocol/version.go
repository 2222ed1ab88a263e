// Package protocol checks scene host plugins against the protocol version
// this build speaks.
package protocol

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/shade/pkg/plugin"
)

// Version represents a parsed protocol version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses a version string in "MAJOR.MINOR.PATCH" format.
func Parse(version string) (Version, error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s (expected MAJOR.MINOR.PATCH)", version)
	}

	var nums [3]int
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid %s version: %s", name, parts[i])
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String returns the string representation of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or +1 as v is older than, equal to or newer than o.
func (v Version) Compare(o Version) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, o.Patch)
}

// IsCompatible checks if a host plugin's protocol version can be used.
// Rules:
// - Major version must match exactly (breaking changes).
// - The version must not be older than plugin.MinCompatibleVersion.
// - Newer minor and patch versions are accepted.
func IsCompatible(pluginVersionStr string) (bool, error) {
	pluginVersion, err := Parse(pluginVersionStr)
	if err != nil {
		return false, fmt.Errorf("failed to parse plugin version: %w", err)
	}

	current, err := Parse(plugin.ProtocolVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse current protocol version: %w", err)
	}
	minVersion, err := Parse(plugin.MinCompatibleVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse minimum compatible version: %w", err)
	}

	if pluginVersion.Major != current.Major {
		return false, fmt.Errorf(
			"incompatible major version: plugin is %s, shade requires %d.x.x",
			pluginVersion, current.Major,
		)
	}
	if pluginVersion.Compare(minVersion) < 0 {
		return false, fmt.Errorf(
			"plugin version %s is too old, minimum required is %s",
			pluginVersion, minVersion,
		)
	}
	return true, nil
}
