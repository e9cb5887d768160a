// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package worker runs the per-connection lifecycle: deadlines, parse,
// respond, log, shut down. quark.c spawns one forked process per
// connection (serve()'s switch(fork())); a goroutine per connection is
// the direct Go analogue and gives the same isolation — no worker
// shares mutable state with another, or with the accept loop.
package worker

import (
	"io"
	"net"
	"strconv"
	"time"

	"github.com/quark-contrib/quark/internal/config"
	"github.com/quark-contrib/quark/internal/request"
	"github.com/quark-contrib/quark/internal/response"
	"github.com/quark-contrib/quark/internal/status"
)

// Handle drives one accepted connection to completion and writes one
// access-log line to log. It never panics out to the caller: every
// recoverable failure is converted to a status and logged.
func Handle(conn net.Conn, cfg *config.Config, root string, log io.Writer) {
	defer closeConn(conn)

	// quark.c arms SO_RCVTIMEO and SO_SNDTIMEO independently (each a
	// fresh 30s); re-arming the write deadline after parsing gives the
	// response the same full budget rather than sharing one clock with
	// the request read.
	if err := conn.SetReadDeadline(time.Now().Add(config.ConnTimeout * time.Second)); err != nil {
		return // can't even arm the timeout; abandon silently, matching quark.c's early return
	}

	target := ""
	req, parseStatus, ok := request.Parse(conn)
	if ok {
		target = req.Target
	}

	if err := conn.SetWriteDeadline(time.Now().Add(config.ConnTimeout * time.Second)); err != nil {
		return
	}

	var st status.Status
	if !ok {
		st = status.WriteError(conn, parseStatus, false)
	} else {
		st = response.Respond(conn, req, cfg, root)
	}

	logLine(log, conn.RemoteAddr(), st, target)
}

func closeConn(conn net.Conn) {
	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.CloseRead()
		tcp.CloseWrite()
	} else if uc, ok := conn.(*net.UnixConn); ok {
		uc.CloseRead()
		uc.CloseWrite()
	}
	conn.Close()
}

func logLine(w io.Writer, addr net.Addr, st status.Status, target string) {
	peer := addr.String()
	if host, _, err := net.SplitHostPort(peer); err == nil {
		peer = host
	}
	ts := time.Now().UTC().Format("2006-01-02T15:04:05")
	io.WriteString(w, ts+"\t"+peer+"\t"+strconv.Itoa(int(st))+"\t"+target+"\n")
}
