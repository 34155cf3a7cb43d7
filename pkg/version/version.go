// Package version reports the ticktock build and the manager/worker message
// protocol version.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Build is the release version, set at link time with
// -ldflags "-X github.com/ticktock-timers/ticktock-go/pkg/version.Build=v1.2.3".
var Build = "dev"

// Protocol is the version of the CBOR command/response schema in pkg/wire.
// Minor bumps add optional keys; major bumps change or remove keys.
const Protocol = "1.0"

// ProtocolVersion is a parsed "major.minor" protocol version.
type ProtocolVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (ProtocolVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return ProtocolVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return ProtocolVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return ProtocolVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return ProtocolVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// Current returns the parsed Protocol.
func Current() ProtocolVersion {
	v, _ := Parse(Protocol)
	return v
}

// String returns the version as "major.minor".
func (v ProtocolVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if other can exchange messages with v.
func (v ProtocolVersion) Compatible(other ProtocolVersion) bool {
	return v.Major == other.Major
}

// String describes the build for display.
func String() string {
	return fmt.Sprintf("ticktock %s (protocol %s)", Build, Protocol)
}
