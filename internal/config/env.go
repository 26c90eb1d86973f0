// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The slumber authors

package config

import (
	"fmt"

	"github.com/slumbermc/slumber/internal/logger"
)

// loadEnv builds the whole tree from environment variables. Every field
// falls back to its section default except the backend start command, whose
// absence is fatal.
func loadEnv(lookup lookupFunc, log *logger.Logger) (*Config, error) {
	env := envSource{lookup: lookup}

	command, ok := env.raw("SERVER_COMMAND")
	if !ok || command == "" {
		return nil, fatal(
			fmt.Errorf("%w: required environment variable %sSERVER_COMMAND is not set", ErrMissingCommand, envPrefix),
			fmt.Sprintf("Set %sSERVER_COMMAND, e.g. %q", envPrefix, "java -Xmx1G -jar server.jar --nogui"),
		)
	}

	return &Config{
		Public:   publicFromEnv(env),
		Server:   serverFromEnv(env, decodeEscapes(command)),
		Time:     timeFromEnv(env),
		Motd:     motdFromEnv(env),
		Join:     joinFromEnv(env),
		Lockout:  lockoutFromEnv(env),
		Rcon:     rconFromEnv(env),
		Advanced: advancedFromEnv(env),
		Meta:     metaFromEnv(env),
	}, nil
}

func publicFromEnv(env envSource) Public {
	p := defaultPublic()
	p.Address = env.Addr("PUBLIC_ADDRESS", defaultPublicAddress)
	p.Version = env.String("PUBLIC_VERSION", p.Version)
	p.Protocol = env.Uint32("PUBLIC_PROTOCOL", p.Protocol)
	return p
}

func serverFromEnv(env envSource, command string) Server {
	s := defaultServer()
	s.Command = command
	s.Directory = env.String("SERVER_DIRECTORY", s.Directory)
	s.Address = env.Addr("SERVER_ADDRESS", defaultServerAddress)
	s.FreezeProcess = env.Bool("SERVER_FREEZE_PROCESS", s.FreezeProcess)
	s.WakeOnStart = env.Bool("SERVER_WAKE_ON_START", s.WakeOnStart)
	s.WakeOnCrash = env.Bool("SERVER_WAKE_ON_CRASH", s.WakeOnCrash)
	s.ProbeOnStart = env.Bool("SERVER_PROBE_ON_START", s.ProbeOnStart)
	s.Forge = env.Bool("SERVER_FORGE", s.Forge)
	s.StartTimeout = env.Uint32("SERVER_START_TIMEOUT", s.StartTimeout)
	s.StopTimeout = env.Uint32("SERVER_STOP_TIMEOUT", s.StopTimeout)
	s.WakeWhitelist = env.Bool("SERVER_WAKE_WHITELIST", s.WakeWhitelist)
	s.BlockBannedIPs = env.Bool("SERVER_BLOCK_BANNED_IPS", s.BlockBannedIPs)
	s.DropBannedIPs = env.Bool("SERVER_DROP_BANNED_IPS", s.DropBannedIPs)
	s.SendProxyV2 = env.Bool("SERVER_SEND_PROXY_V2", s.SendProxyV2)
	return s
}

func timeFromEnv(env envSource) Time {
	t := defaultTime()
	t.SleepAfter = env.Uint32("TIME_SLEEP_AFTER", t.SleepAfter)
	t.MinOnlineTime = env.Uint32("TIME_MIN_ONLINE_TIME", t.MinOnlineTime)
	return t
}

func motdFromEnv(env envSource) Motd {
	m := defaultMotd()
	m.Sleeping = env.String("MOTD_SLEEPING", m.Sleeping)
	m.Starting = env.String("MOTD_STARTING", m.Starting)
	m.Stopping = env.String("MOTD_STOPPING", m.Stopping)
	m.FromServer = env.Bool("MOTD_FROM_SERVER", m.FromServer)
	return m
}

func joinFromEnv(env envSource) Join {
	j := defaultJoin()

	// Unknown names in the list are dropped silently; an empty result is a
	// valid, if inert, configuration.
	names := env.List("JOIN_METHODS", []string{"hold", "kick"})
	methods := make([]Method, 0, len(names))
	for _, name := range names {
		method, err := ParseMethod(name)
		if err != nil {
			continue
		}
		methods = append(methods, method)
	}
	j.Methods = methods

	j.Kick.Starting = env.String("JOIN_KICK_STARTING", j.Kick.Starting)
	j.Kick.Stopping = env.String("JOIN_KICK_STOPPING", j.Kick.Stopping)
	j.Hold.Timeout = env.Uint32("JOIN_HOLD_TIMEOUT", j.Hold.Timeout)
	j.Forward.Address = env.Addr("JOIN_FORWARD_ADDRESS", defaultForwardAddress)
	j.Forward.SendProxyV2 = env.Bool("JOIN_FORWARD_SEND_PROXY_V2", j.Forward.SendProxyV2)
	j.Lobby.Timeout = env.Uint32("JOIN_LOBBY_TIMEOUT", j.Lobby.Timeout)
	j.Lobby.Message = env.String("JOIN_LOBBY_MESSAGE", j.Lobby.Message)
	j.Lobby.ReadySound = env.String("JOIN_LOBBY_READY_SOUND", j.Lobby.ReadySound)
	return j
}

func lockoutFromEnv(env envSource) Lockout {
	l := defaultLockout()
	l.Enabled = env.Bool("LOCKOUT_ENABLED", l.Enabled)
	l.Message = env.String("LOCKOUT_MESSAGE", l.Message)
	return l
}

func rconFromEnv(env envSource) Rcon {
	r := defaultRcon()
	r.Enabled = env.Bool("RCON_ENABLED", r.Enabled)
	r.Port = env.Uint16("RCON_PORT", r.Port)
	r.Password = env.String("RCON_PASSWORD", r.Password)
	r.RandomizePassword = env.Bool("RCON_RANDOMIZE_PASSWORD", r.RandomizePassword)
	r.SendProxyV2 = env.Bool("RCON_SEND_PROXY_V2", r.SendProxyV2)
	return r
}

func advancedFromEnv(env envSource) Advanced {
	a := defaultAdvanced()
	a.RewriteServerProperties = env.Bool("ADVANCED_REWRITE_SERVER_PROPERTIES", a.RewriteServerProperties)
	return a
}

func metaFromEnv(env envSource) Meta {
	return Meta{
		Version: env.String("CONFIG_VERSION", ""),
	}
}
