// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The slumber authors

package config

import (
	"fmt"
	"net/netip"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/slumbermc/slumber/internal/logger"
)

// fileConfig is the decode target for the TOML source. Scalar fields are
// pointers so an absent field can be told apart from an explicit zero value
// (e.g. freeze_process = false) when defaults are applied.
type fileConfig struct {
	Public   filePublic   `toml:"public"`
	Server   fileServer   `toml:"server"`
	Time     fileTime     `toml:"time"`
	Motd     fileMotd     `toml:"motd"`
	Join     fileJoin     `toml:"join"`
	Lockout  fileLockout  `toml:"lockout"`
	Rcon     fileRcon     `toml:"rcon"`
	Advanced fileAdvanced `toml:"advanced"`
	Meta     fileMeta     `toml:"config"`
}

type filePublic struct {
	Address  *string `toml:"address"`
	Version  *string `toml:"version"`
	Protocol *uint32 `toml:"protocol"`
}

type fileServer struct {
	Directory      *string `toml:"directory"`
	Command        *string `toml:"command"`
	Address        *string `toml:"address"`
	FreezeProcess  *bool   `toml:"freeze_process"`
	WakeOnStart    *bool   `toml:"wake_on_start"`
	WakeOnCrash    *bool   `toml:"wake_on_crash"`
	ProbeOnStart   *bool   `toml:"probe_on_start"`
	Forge          *bool   `toml:"forge"`
	StartTimeout   *uint32 `toml:"start_timeout"`
	StopTimeout    *uint32 `toml:"stop_timeout"`
	WakeWhitelist  *bool   `toml:"wake_whitelist"`
	BlockBannedIPs *bool   `toml:"block_banned_ips"`
	DropBannedIPs  *bool   `toml:"drop_banned_ips"`
	SendProxyV2    *bool   `toml:"send_proxy_v2"`
}

type fileTime struct {
	SleepAfter    *uint32 `toml:"sleep_after"`
	MinOnlineTime *uint32 `toml:"min_online_time"`

	// MinimumOnlineTime is a legacy spelling of min_online_time.
	MinimumOnlineTime *uint32 `toml:"minimum_online_time"`
}

type fileMotd struct {
	Sleeping   *string `toml:"sleeping"`
	Starting   *string `toml:"starting"`
	Stopping   *string `toml:"stopping"`
	FromServer *bool   `toml:"from_server"`
}

type fileJoin struct {
	Methods *[]Method   `toml:"methods"`
	Kick    fileKick    `toml:"kick"`
	Hold    fileHold    `toml:"hold"`
	Forward fileForward `toml:"forward"`
	Lobby   fileLobby   `toml:"lobby"`
}

type fileKick struct {
	Starting *string `toml:"starting"`
	Stopping *string `toml:"stopping"`
}

type fileHold struct {
	Timeout *uint32 `toml:"timeout"`
}

type fileForward struct {
	Address     *string `toml:"address"`
	SendProxyV2 *bool   `toml:"send_proxy_v2"`
}

type fileLobby struct {
	Timeout    *uint32 `toml:"timeout"`
	Message    *string `toml:"message"`
	ReadySound *string `toml:"ready_sound"`
}

type fileLockout struct {
	Enabled *bool   `toml:"enabled"`
	Message *string `toml:"message"`
}

type fileRcon struct {
	Enabled           *bool   `toml:"enabled"`
	Port              *uint16 `toml:"port"`
	Password          *string `toml:"password"`
	RandomizePassword *bool   `toml:"randomize_password"`
	SendProxyV2       *bool   `toml:"send_proxy_v2"`
}

type fileAdvanced struct {
	RewriteServerProperties *bool `toml:"rewrite_server_properties"`
}

type fileMeta struct {
	Version *string `toml:"version"`
}

// loadFile reads and resolves a file-sourced configuration. Read and parse
// failures are fatal; the version compatibility check only warns.
func loadFile(path string, log *logger.Logger) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fatal(fmt.Errorf("failed to read config file: %w", err), fileHints...)
	}

	var raw fileConfig
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fatal(fmt.Errorf("failed to parse config file: %w", err), fileHints...)
	}

	// Unknown sections and fields are ignored, not rejected.
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		log.Debug().Strs("keys", keys).Msg("ignoring unknown config keys")
	}

	cfg, err := raw.resolve()
	if err != nil {
		return nil, fatal(fmt.Errorf("invalid config file: %w", err), fileHints...)
	}

	cfg.path = path
	warnVersion(log, cfg.Meta.Version)

	return cfg, nil
}

var fileHints = []string{
	"Make sure the file is valid TOML",
	"Re-run configuration validation: slumber -config <path>",
}

// resolve turns the decoded file tree into a fully-populated Config,
// substituting section defaults for every absent field.
func (f fileConfig) resolve() (*Config, error) {
	cfg := &Config{
		Public:   defaultPublic(),
		Server:   defaultServer(),
		Time:     defaultTime(),
		Motd:     defaultMotd(),
		Join:     defaultJoin(),
		Lockout:  defaultLockout(),
		Rcon:     defaultRcon(),
		Advanced: defaultAdvanced(),
	}

	override(&cfg.Public.Version, f.Public.Version)
	override(&cfg.Public.Protocol, f.Public.Protocol)
	if err := overrideAddr(&cfg.Public.Address, f.Public.Address, "public.address"); err != nil {
		return nil, err
	}

	override(&cfg.Server.Directory, f.Server.Directory)
	override(&cfg.Server.Command, f.Server.Command)
	override(&cfg.Server.FreezeProcess, f.Server.FreezeProcess)
	override(&cfg.Server.WakeOnStart, f.Server.WakeOnStart)
	override(&cfg.Server.WakeOnCrash, f.Server.WakeOnCrash)
	override(&cfg.Server.ProbeOnStart, f.Server.ProbeOnStart)
	override(&cfg.Server.Forge, f.Server.Forge)
	override(&cfg.Server.StartTimeout, f.Server.StartTimeout)
	override(&cfg.Server.StopTimeout, f.Server.StopTimeout)
	override(&cfg.Server.WakeWhitelist, f.Server.WakeWhitelist)
	override(&cfg.Server.BlockBannedIPs, f.Server.BlockBannedIPs)
	override(&cfg.Server.DropBannedIPs, f.Server.DropBannedIPs)
	override(&cfg.Server.SendProxyV2, f.Server.SendProxyV2)
	if err := overrideAddr(&cfg.Server.Address, f.Server.Address, "server.address"); err != nil {
		return nil, err
	}
	if cfg.Server.Command == "" {
		return nil, fmt.Errorf("%w: server.command must be set", ErrMissingCommand)
	}

	override(&cfg.Time.SleepAfter, f.Time.SleepAfter)
	override(&cfg.Time.MinOnlineTime, f.Time.MinimumOnlineTime)
	override(&cfg.Time.MinOnlineTime, f.Time.MinOnlineTime)

	override(&cfg.Motd.Sleeping, f.Motd.Sleeping)
	override(&cfg.Motd.Starting, f.Motd.Starting)
	override(&cfg.Motd.Stopping, f.Motd.Stopping)
	override(&cfg.Motd.FromServer, f.Motd.FromServer)

	override(&cfg.Join.Methods, f.Join.Methods)
	override(&cfg.Join.Kick.Starting, f.Join.Kick.Starting)
	override(&cfg.Join.Kick.Stopping, f.Join.Kick.Stopping)
	override(&cfg.Join.Hold.Timeout, f.Join.Hold.Timeout)
	override(&cfg.Join.Forward.SendProxyV2, f.Join.Forward.SendProxyV2)
	if err := overrideAddr(&cfg.Join.Forward.Address, f.Join.Forward.Address, "join.forward.address"); err != nil {
		return nil, err
	}
	override(&cfg.Join.Lobby.Timeout, f.Join.Lobby.Timeout)
	override(&cfg.Join.Lobby.Message, f.Join.Lobby.Message)
	override(&cfg.Join.Lobby.ReadySound, f.Join.Lobby.ReadySound)

	override(&cfg.Lockout.Enabled, f.Lockout.Enabled)
	override(&cfg.Lockout.Message, f.Lockout.Message)

	override(&cfg.Rcon.Enabled, f.Rcon.Enabled)
	override(&cfg.Rcon.Port, f.Rcon.Port)
	override(&cfg.Rcon.Password, f.Rcon.Password)
	override(&cfg.Rcon.RandomizePassword, f.Rcon.RandomizePassword)
	override(&cfg.Rcon.SendProxyV2, f.Rcon.SendProxyV2)

	override(&cfg.Advanced.RewriteServerProperties, f.Advanced.RewriteServerProperties)

	override(&cfg.Meta.Version, f.Meta.Version)

	return cfg, nil
}

// override replaces the default at dst with the declared value, when there
// is one.
func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// overrideAddr resolves a declared host:port onto dst. A file-sourced
// address that fails to resolve is a configuration error.
func overrideAddr(dst *netip.AddrPort, src *string, field string) error {
	if src == nil {
		return nil
	}

	addr, err := resolveAddr(*src)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}

	*dst = addr
	return nil
}
