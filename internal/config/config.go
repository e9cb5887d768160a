// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package config holds quark's process-wide, set-once-at-startup
// configuration, passed by value (or pointer-to-immutable) to every
// component the way the teacher passes a *Stage/*Webapp down to its
// handlets (hemi/web_static.go's onCreate), simplified here since
// quark has no plugin registration system to thread through.
package config

import (
	"errors"

	"github.com/quark-contrib/quark/internal/mimetype"
)

// Limits, named after quark.c's config.h macros.
const (
	PathMax   = 4096 // includes the NUL terminator budget
	FieldMax  = 200
	HeaderMax = 4096
)

// ConnTimeout is the read/write deadline applied to every accepted
// connection (spec.md §4.H / §5).
const ConnTimeout = 30 // seconds

// Config is the immutable, process-wide configuration. Build one as a
// struct literal, then pass it by pointer to every component; nothing in the core
// ever mutates it after Setup returns.
type Config struct {
	Host     string // bind host, TCP only
	Port     string // bind port, TCP only
	UDSName  string // Unix-domain socket path; mutually exclusive with Host/Port
	ServeDir string // document root to chroot into
	User     string // identity to drop to, empty to skip
	Group    string // identity to drop to, empty to skip

	DocIndex  string         // filename served in lieu of a directory listing
	ListDirs  bool           // generate an HTML listing when DocIndex is absent
	Mimes     mimetype.Table // ordered (extension, content-type) table
	MaxNProcs uint64         // soft/hard NPROC rlimit raised at startup
}

// Validate checks the invariants spec.md §3 requires of Configuration.
func (c *Config) Validate() error {
	if c.UDSName != "" && (c.Host != "" || c.Port != "") {
		return errors.New("config: -U is mutually exclusive with -h/-p")
	}
	if c.UDSName == "" && c.Port == "" {
		return errors.New("config: a TCP port or a Unix socket path is required")
	}
	if c.ServeDir == "" {
		return errors.New("config: a document root (-d) is required")
	}
	if c.DocIndex == "" {
		return errors.New("config: docindex must not be empty")
	}
	return nil
}
