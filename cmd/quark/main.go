// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// quark is a minimal HTTP/1.x static file server for a single
// document root.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quark-contrib/quark/internal/boot"
	"github.com/quark-contrib/quark/internal/config"
	"github.com/quark-contrib/quark/internal/listen"
	"github.com/quark-contrib/quark/internal/mimetype"
)

const version = "0.1.0"

const usage = `usage: quark [-v] [[[-h host] [-p port]] | [-U udsocket]] [-d dir] [-u user] [-g group] [-i docindex] [-l] [-n maxnprocs]
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	var showVersion bool
	var host, port, udsname, servedir, user, group, docindex string
	var listdirs bool
	var maxnprocs uint64

	flag.BoolVar(&showVersion, "v", false, "")
	flag.StringVar(&host, "h", "", "")
	flag.StringVar(&port, "p", "", "")
	flag.StringVar(&udsname, "U", "", "")
	flag.StringVar(&servedir, "d", "/var/www", "")
	flag.StringVar(&user, "u", "", "")
	flag.StringVar(&group, "g", "", "")
	flag.StringVar(&docindex, "i", "index.html", "")
	flag.BoolVar(&listdirs, "l", false, "")
	flag.Uint64Var(&maxnprocs, "n", 512, "")
	flag.Parse()

	if showVersion {
		fmt.Fprintln(os.Stderr, "quark-"+version)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := &config.Config{
		Host:      host,
		Port:      port,
		UDSName:   udsname,
		ServeDir:  servedir,
		User:      user,
		Group:     group,
		DocIndex:  docindex,
		ListDirs:  listdirs,
		Mimes:     mimetype.Default,
		MaxNProcs: maxnprocs,
	}
	if udsname == "" && port == "" {
		cfg.Port = "80"
	}
	if err := cfg.Validate(); err != nil {
		die(err)
	}

	ln, err := boot.Setup(cfg)
	if err != nil {
		die(err)
	}

	// Setup chroots the process into cfg.ServeDir, so the core now
	// resolves every target against the new filesystem root "/".
	if err := listen.Serve(ln, cfg, "/", os.Stdout); err != nil {
		die(err)
	}
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "quark: %s\n", err)
	os.Exit(1)
}
