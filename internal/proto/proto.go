// Package proto holds Minecraft protocol constants shared between the
// configuration engine and the proxy core.
package proto

// DefaultVersionName is the protocol version name hinted to clients while
// the backend server's real version is not yet known.
const DefaultVersionName = "1.20.3"

// DefaultProtocol is the protocol number matching DefaultVersionName.
const DefaultProtocol uint32 = 765
