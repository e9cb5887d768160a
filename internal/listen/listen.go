// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package listen runs the accept loop, component I: block on Accept,
// spawn one worker per connection. A timeout error from Accept is
// logged and the loop goes on; any other Accept error ends the loop
// and is returned, so it is not retried. quark.c forks a
// child per connection and relies on SIG_IGN on SIGCHLD so zombies
// never accumulate; a goroutine needs no equivalent reaping step, the
// Go runtime reclaims it when Handle returns.
package listen

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/quark-contrib/quark/internal/config"
	"github.com/quark-contrib/quark/internal/worker"
)

// Serve accepts connections off ln forever, dispatching each to its
// own worker goroutine. A permanent listener error (e.g. ln was
// closed) is the only way out, so callers that want to stop Serve
// should close ln.
func Serve(ln net.Listener, cfg *config.Config, root string, log io.Writer) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if !isRecoverable(err) {
				return err
			}
			fmt.Fprintf(os.Stderr, "quark: accept: %s\n", err)
			continue
		}
		go worker.Handle(conn, cfg, root, log)
	}
}

func isRecoverable(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return false
}
