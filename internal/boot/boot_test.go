// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package boot

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/quark-contrib/quark/internal/config"
)

func TestBindTCP(t *testing.T) {
	cfg := &config.Config{Host: "127.0.0.1", Port: "0"}
	ln, err := Bind(cfg)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	defer ln.Close()
	if _, _, err := net.SplitHostPort(ln.Addr().String()); err != nil {
		t.Fatalf("unexpected listener address %q: %v", ln.Addr(), err)
	}
}

func TestBindUnixSocketRemovesStalePath(t *testing.T) {
	dir := t.TempDir()
	sockPath := filepath.Join(dir, "quark.sock")
	if err := os.WriteFile(sockPath, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{UDSName: sockPath}
	ln, err := Bind(cfg)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	defer ln.Close()
	if ln.Addr().String() != sockPath {
		t.Fatalf("listener address = %q, want %q", ln.Addr(), sockPath)
	}
}
