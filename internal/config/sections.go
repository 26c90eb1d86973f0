// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The slumber authors

package config

import (
	"net/netip"
	"runtime"

	"github.com/slumbermc/slumber/internal/proto"
)

// String defaults for every address-bearing field. These are the values
// substituted when an environment-sourced address is absent or malformed,
// so they must always parse as literal IP and port.
const (
	defaultPublicAddress  = "0.0.0.0:25565"
	defaultServerAddress  = "127.0.0.1:25566"
	defaultForwardAddress = "127.0.0.1:25565"
)

// Default display strings. The section sign sequences are Minecraft chat
// formatting codes and are part of the rendered text.
const (
	defaultMotdSleeping = "☠ Server is sleeping\n§2☻ Join to start it up"
	defaultMotdStarting = "§2☻ Server is starting...\n§7⌛ Please wait..."
	defaultMotdStopping = "☠ Server going to sleep...\n⌛ Please wait..."

	defaultKickStarting = "Server is starting... §c♥§r\n\nThis may take some time.\n\nPlease try to reconnect in a minute."
	defaultKickStopping = "Server is going to sleep... §7☠§r\n\nPlease try to reconnect in a minute to wake it again."

	defaultLobbyMessage    = "§2Server is starting\n§7⌛ Please wait..."
	defaultLobbyReadySound = "block.note_block.chime"

	defaultLockoutMessage = "Server is closed §7☠§r\n\nPlease come back another time."
)

// Public holds the public-facing listen address and the protocol hints shown
// to clients before the backend server's real details are known.
type Public struct {
	// Address is the address slumber listens on for player connections.
	Address netip.AddrPort `toml:"address"`

	// Version is the protocol version name hint.
	Version string `toml:"version"`

	// Protocol is the protocol version number hint.
	Protocol uint32 `toml:"protocol"`
}

func defaultPublic() Public {
	return Public{
		Address:  netip.MustParseAddrPort(defaultPublicAddress),
		Version:  proto.DefaultVersionName,
		Protocol: proto.DefaultProtocol,
	}
}

// Server holds settings for the backend server process.
type Server struct {
	// Directory is the backend working directory as declared. Use
	// [Config.ServerDirectory] instead, which resolves it relative to the
	// configuration file location when file-sourced.
	Directory string `toml:"directory"`

	// Command starts the backend server. This is the only setting without
	// a default.
	Command string `toml:"command"`

	// Address is the address the backend server itself listens on.
	Address netip.AddrPort `toml:"address"`

	// FreezeProcess freezes the backend process instead of killing it when
	// no players are online, making wake-up faster. Unix only.
	FreezeProcess bool `toml:"freeze_process"`

	// WakeOnStart wakes the backend immediately when slumber starts.
	WakeOnStart bool `toml:"wake_on_start"`

	// WakeOnCrash wakes the backend immediately after a crash.
	WakeOnCrash bool `toml:"wake_on_crash"`

	// ProbeOnStart probes required backend details when slumber starts,
	// waking the backend once to do so.
	ProbeOnStart bool `toml:"probe_on_start"`

	// Forge marks the backend as running a Forge mod loader.
	Forge bool `toml:"forge"`

	// StartTimeout is the number of seconds after which a starting backend
	// is force killed.
	StartTimeout uint32 `toml:"start_timeout"`

	// StopTimeout is the number of seconds after which a stopping backend
	// is force killed.
	StopTimeout uint32 `toml:"stop_timeout"`

	// WakeWhitelist requires the joining user to be whitelisted on the
	// backend before their connection may wake it.
	WakeWhitelist bool `toml:"wake_whitelist"`

	// BlockBannedIPs refuses connections from IPs listed in the backend's
	// banned-ips.json.
	BlockBannedIPs bool `toml:"block_banned_ips"`

	// DropBannedIPs silently drops connections from banned IPs instead of
	// refusing them with a message.
	DropBannedIPs bool `toml:"drop_banned_ips"`

	// SendProxyV2 adds a HAProxy v2 header to proxied connections.
	SendProxyV2 bool `toml:"send_proxy_v2"`
}

func defaultServer() Server {
	return Server{
		Directory:      ".",
		Address:        netip.MustParseAddrPort(defaultServerAddress),
		FreezeProcess:  true,
		StartTimeout:   300,
		StopTimeout:    150,
		WakeWhitelist:  true,
		BlockBannedIPs: true,
	}
}

// Time holds idle-timing settings.
type Time struct {
	// SleepAfter is the number of seconds without players after which the
	// backend is put to sleep.
	SleepAfter uint32 `toml:"sleep_after"`

	// MinOnlineTime is the minimum number of seconds the backend stays
	// online once woken.
	MinOnlineTime uint32 `toml:"min_online_time"`
}

func defaultTime() Time {
	return Time{
		SleepAfter:    60,
		MinOnlineTime: 60,
	}
}

// Motd holds the status-line text shown in the server list for each proxy
// state.
type Motd struct {
	// Sleeping is shown while the backend is asleep.
	Sleeping string `toml:"sleeping"`

	// Starting is shown while the backend is starting.
	Starting string `toml:"starting"`

	// Stopping is shown while the backend is going to sleep.
	Stopping string `toml:"stopping"`

	// FromServer prefers the backend's own MOTD once it is known.
	FromServer bool `toml:"from_server"`
}

func defaultMotd() Motd {
	return Motd{
		Sleeping: defaultMotdSleeping,
		Starting: defaultMotdStarting,
		Stopping: defaultMotdStopping,
	}
}

// Join holds the ordered join strategies and one configuration block per
// strategy. An empty Methods list is valid; every join is then refused.
type Join struct {
	// Methods are tried in order for each incoming join.
	Methods []Method `toml:"methods"`

	Kick    JoinKick    `toml:"kick"`
	Hold    JoinHold    `toml:"hold"`
	Forward JoinForward `toml:"forward"`
	Lobby   JoinLobby   `toml:"lobby"`
}

func defaultJoin() Join {
	return Join{
		Methods: []Method{MethodHold, MethodKick},
		Kick:    defaultJoinKick(),
		Hold:    defaultJoinHold(),
		Forward: defaultJoinForward(),
		Lobby:   defaultJoinLobby(),
	}
}

// JoinKick configures the kick strategy.
type JoinKick struct {
	// Starting is the kick message while the backend is starting.
	Starting string `toml:"starting"`

	// Stopping is the kick message while the backend is stopping.
	Stopping string `toml:"stopping"`
}

func defaultJoinKick() JoinKick {
	return JoinKick{
		Starting: defaultKickStarting,
		Stopping: defaultKickStopping,
	}
}

// JoinHold configures the hold strategy.
type JoinHold struct {
	// Timeout is the number of seconds a connection is held while the
	// backend starts.
	Timeout uint32 `toml:"timeout"`
}

func defaultJoinHold() JoinHold {
	return JoinHold{Timeout: 25}
}

// JoinForward configures the forward strategy.
type JoinForward struct {
	// Address is the host to forward connections to.
	Address netip.AddrPort `toml:"address"`

	// SendProxyV2 adds a HAProxy v2 header to forwarded connections.
	SendProxyV2 bool `toml:"send_proxy_v2"`
}

func defaultJoinForward() JoinForward {
	return JoinForward{
		Address: netip.MustParseAddrPort(defaultForwardAddress),
	}
}

// JoinLobby configures the temporary lobby strategy.
type JoinLobby struct {
	// Timeout is the number of seconds a client is kept in the lobby while
	// the backend starts.
	Timeout uint32 `toml:"timeout"`

	// Message is the banner shown to the client in the lobby.
	Message string `toml:"message"`

	// ReadySound is the sound effect played when the backend is ready.
	// Empty disables the sound.
	ReadySound string `toml:"ready_sound"`
}

func defaultJoinLobby() JoinLobby {
	return JoinLobby{
		Timeout:    10 * 60,
		Message:    defaultLobbyMessage,
		ReadySound: defaultLobbyReadySound,
	}
}

// Lockout globally refuses connections when enabled.
type Lockout struct {
	// Enabled instantly kicks every connecting player.
	Enabled bool `toml:"enabled"`

	// Message is the kick message shown while locked out.
	Message string `toml:"message"`
}

func defaultLockout() Lockout {
	return Lockout{Message: defaultLockoutMessage}
}

// Rcon holds remote-console access settings for sleeping the backend.
type Rcon struct {
	// Enabled allows slumber to stop the backend over RCON. Defaults to
	// true on Windows where process signals are unavailable.
	Enabled bool `toml:"enabled"`

	// Port is the backend RCON port.
	Port uint16 `toml:"port"`

	// Password is the backend RCON password.
	Password string `toml:"password"`

	// RandomizePassword replaces the RCON password with a random one on
	// each backend start.
	RandomizePassword bool `toml:"randomize_password"`

	// SendProxyV2 adds a HAProxy v2 header to RCON connections.
	SendProxyV2 bool `toml:"send_proxy_v2"`
}

func defaultRcon() Rcon {
	return Rcon{
		Enabled:           runtime.GOOS == "windows",
		Port:              25575,
		RandomizePassword: true,
	}
}

// Advanced holds toggles that most deployments never touch.
type Advanced struct {
	// RewriteServerProperties lets slumber rewrite the backend's
	// server.properties so its port matches the configured address.
	RewriteServerProperties bool `toml:"rewrite_server_properties"`
}

func defaultAdvanced() Advanced {
	return Advanced{RewriteServerProperties: true}
}

// Meta is the self-describing [config] section of the file format.
type Meta struct {
	// Version is the configuration format version the file was written
	// for. Empty when not declared; checked non-fatally at load time.
	Version string `toml:"version,omitempty"`
}
