// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package boot is the external glue spec.md §6.2 describes: it binds
// the listening socket, raises the NPROC rlimit, chroots into the
// document root and drops privileges, then hands a ready net.Listener
// back to the caller. None of this is part of the request-handling
// core; it runs once, before the accept loop starts.
package boot

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/user"
	"strconv"

	"github.com/quark-contrib/quark/internal/config"
)

// Bind opens the listening endpoint cfg describes: a TCP socket via
// host:port, or a Unix-domain socket via udsname (after unlinking any
// stale path, mirroring quark.c's getusock()). net.Listen already
// applies SO_REUSEADDR and backlogs to the platform maximum, so no
// raw syscall setup is needed here the way quark.c's getipsock() does
// it by hand.
func Bind(cfg *config.Config) (net.Listener, error) {
	if cfg.UDSName != "" {
		if err := os.Remove(cfg.UDSName); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("boot: remove stale socket %s: %w", cfg.UDSName, err)
		}
		return net.Listen("unix", cfg.UDSName)
	}
	return net.Listen("tcp", net.JoinHostPort(cfg.Host, cfg.Port))
}

// Setup performs the full startup sequence: raise RLIMIT_NPROC,
// resolve user/group, bind, chdir+chroot into cfg.ServeDir, then drop
// to the resolved identities. On success the process's filesystem
// root is cfg.ServeDir, so callers should pass root "/" to
// worker.Handle from here on. Setup refuses to return successfully if
// the process would still run as root afterwards.
func Setup(cfg *config.Config) (net.Listener, error) {
	if err := raiseNProcLimit(cfg.MaxNProcs); err != nil {
		return nil, fmt.Errorf("boot: setrlimit RLIMIT_NPROC: %w", err)
	}

	var uid, gid int
	var dropUser, dropGroup bool
	if cfg.User != "" {
		u, err := user.Lookup(cfg.User)
		if err != nil {
			return nil, fmt.Errorf("boot: invalid user %s: %w", cfg.User, err)
		}
		if uid, err = strconv.Atoi(u.Uid); err != nil {
			return nil, fmt.Errorf("boot: invalid uid for %s: %w", cfg.User, err)
		}
		dropUser = true
	}
	if cfg.Group != "" {
		g, err := user.LookupGroup(cfg.Group)
		if err != nil {
			return nil, fmt.Errorf("boot: invalid group %s: %w", cfg.Group, err)
		}
		if gid, err = strconv.Atoi(g.Gid); err != nil {
			return nil, fmt.Errorf("boot: invalid gid for %s: %w", cfg.Group, err)
		}
		dropGroup = true
	}

	ln, err := Bind(cfg)
	if err != nil {
		return nil, fmt.Errorf("boot: bind: %w", err)
	}

	if err := os.Chdir(cfg.ServeDir); err != nil {
		ln.Close()
		return nil, fmt.Errorf("boot: chdir %s: %w", cfg.ServeDir, err)
	}
	if err := chroot("."); err != nil {
		ln.Close()
		return nil, fmt.Errorf("boot: chroot .: %w", err)
	}

	if err := dropPrivileges(uid, gid, dropUser, dropGroup); err != nil {
		ln.Close()
		return nil, fmt.Errorf("boot: drop privileges: %w", err)
	}

	if euid, egid := os.Geteuid(), os.Getegid(); euid == 0 || egid == 0 {
		ln.Close()
		return nil, errors.New("boot: refusing to run as root")
	}

	return ln, nil
}
