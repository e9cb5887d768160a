// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quark-contrib/quark/internal/config"
	"github.com/quark-contrib/quark/internal/mimetype"
	"github.com/quark-contrib/quark/internal/request"
	"github.com/quark-contrib/quark/internal/status"
)

func newTestConfig() *config.Config {
	return &config.Config{
		DocIndex: "index.html",
		ListDirs: true,
		Mimes:    mimetype.Default,
	}
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func headerSection(resp string) string {
	i := strings.Index(resp, "\r\n\r\n")
	if i < 0 {
		return resp
	}
	return resp[:i]
}

func bodySection(resp string) string {
	i := strings.Index(resp, "\r\n\r\n")
	if i < 0 {
		return ""
	}
	return resp[i+4:]
}

// Scenario 1: a path component starting with "." is rejected with 403,
// whether or not the path also escapes the root via "..".
func TestHiddenPathRejected(t *testing.T) {
	root := t.TempDir()
	req := &request.Request{Method: request.GET, Target: "/.git/config"}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.Forbidden {
		t.Fatalf("status = %d, want 403", s)
	}
	if !strings.Contains(headerSection(buf.String()), "403 Forbidden") {
		t.Fatalf("unexpected response: %q", buf.String())
	}
}

// A target that escapes the root via ".." is normalized back under the
// root rather than rejected outright; stat runs before the redirect
// check (response.go mirrors quark.c's stat-before-redirect order), so
// against an empty root this 404s rather than ever reaching the
// redirect branch.
func TestDotDotStaysUnderRoot(t *testing.T) {
	root := t.TempDir()
	req := &request.Request{Method: request.GET, Target: "/../etc/passwd"}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.NotFound {
		t.Fatalf("status = %d, want 404 (normalized to /etc/passwd, which doesn't exist)", s)
	}
}

// Scenario 2: normalization triggers a redirect, then a follow-up GET succeeds.
func TestRedirectThenServe(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/c", "hello")

	req := &request.Request{Method: request.GET, Target: "/a//b/../c"}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.MovedPermanently {
		t.Fatalf("status = %d, want 301", s)
	}
	if !strings.Contains(headerSection(buf.String()), "Location: /a/c") {
		t.Fatalf("missing Location header: %q", buf.String())
	}

	req2 := &request.Request{Method: request.GET, Target: "/a/c"}
	var buf2 bytes.Buffer
	s2 := Respond(&buf2, req2, newTestConfig(), root)
	if s2 != status.OK {
		t.Fatalf("status = %d, want 200", s2)
	}
	if !strings.Contains(headerSection(buf2.String()), "Content-Length: 5") {
		t.Fatalf("missing Content-Length: %q", headerSection(buf2.String()))
	}
	if bodySection(buf2.String()) != "hello" {
		t.Fatalf("body = %q, want hello", bodySection(buf2.String()))
	}
}

// Scenario 3: HEAD returns headers but no body.
func TestHeadOmitsBody(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "hello world!") // 12 bytes

	req := &request.Request{Method: request.HEAD, Target: "/index.html"}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.OK {
		t.Fatalf("status = %d, want 200", s)
	}
	if !strings.Contains(headerSection(buf.String()), "Content-Length: 12") {
		t.Fatalf("missing Content-Length: 12: %q", headerSection(buf.String()))
	}
	if bodySection(buf.String()) != "" {
		t.Fatalf("HEAD body = %q, want empty", bodySection(buf.String()))
	}
}

// Scenario 4: directory listing, dotfiles excluded, dirs first.
func TestDirectoryListing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "dirB/keep", "x")
	writeFile(t, root, "a.txt", "x")
	writeFile(t, root, ".hidden", "x")

	req := &request.Request{Method: request.GET, Target: "/"}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.OK {
		t.Fatalf("status = %d, want 200", s)
	}
	body := bodySection(buf.String())
	if !strings.Contains(body, `<a href="..">..</a>`) {
		t.Fatalf("missing .. link: %q", body)
	}
	if strings.Contains(body, ".hidden") {
		t.Fatalf("dotfile leaked into listing: %q", body)
	}
	iDir := strings.Index(body, "dirB/")
	iFile := strings.Index(body, "a.txt")
	if iDir < 0 || iFile < 0 || iDir > iFile {
		t.Fatalf("expected dirB/ before a.txt: %q", body)
	}
}

// Scenario 5: a satisfiable byte range.
func TestRangeRequest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file", "abcdefgh")

	req := &request.Request{Method: request.GET, Target: "/file", Fields: request.Fields{Range: "bytes=2-4"}}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.PartialContent {
		t.Fatalf("status = %d, want 206", s)
	}
	h := headerSection(buf.String())
	if !strings.Contains(h, "Content-Length: 3") {
		t.Fatalf("missing Content-Length: 3: %q", h)
	}
	if !strings.Contains(h, "Content-Range: bytes 2-4/8") {
		t.Fatalf("missing Content-Range: %q", h)
	}
	if bodySection(buf.String()) != "cde" {
		t.Fatalf("body = %q, want cde", bodySection(buf.String()))
	}
}

// Scenario 6: an unsupported method never reaches Respond (request.Parse
// rejects it at §4.E) — covered in internal/request; nothing to add here.

func TestIfModifiedSinceNotModified(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "f.txt", "content")
	full := filepath.Join(root, "f.txt")
	mtime := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if err := os.Chtimes(full, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	req := &request.Request{
		Method: request.GET, Target: "/f.txt",
		Fields: request.Fields{IfModifiedSince: "Mon, 01 Jan 2024 00:00:00 GMT"},
	}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.NotModified {
		t.Fatalf("status = %d, want 304", s)
	}
	if bodySection(buf.String()) != "" {
		t.Fatalf("304 must have no body, got %q", bodySection(buf.String()))
	}
}

func TestNotFound(t *testing.T) {
	root := t.TempDir()
	req := &request.Request{Method: request.GET, Target: "/nope"}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.NotFound {
		t.Fatalf("status = %d, want 404", s)
	}
}

func TestMimeTypeResolution(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "style.css", "body{}")
	req := &request.Request{Method: request.GET, Target: "/style.css"}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.OK {
		t.Fatalf("status = %d, want 200", s)
	}
	if !strings.Contains(headerSection(buf.String()), "Content-Type: text/css") {
		t.Fatalf("missing content type: %q", headerSection(buf.String()))
	}
}

func TestBadRangeSyntax(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file", "abcdefgh")
	req := &request.Request{Method: request.GET, Target: "/file", Fields: request.Fields{Range: "chunks=0-1"}}
	var buf bytes.Buffer
	s := Respond(&buf, req, newTestConfig(), root)
	if s != status.BadRequest {
		t.Fatalf("status = %d, want 400", s)
	}
}

func TestDirectoryListingDisabled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "dir/keep", "x")
	cfg := newTestConfig()
	cfg.ListDirs = false
	req := &request.Request{Method: request.GET, Target: "/dir/"}
	var buf bytes.Buffer
	s := Respond(&buf, req, cfg, root)
	if s != status.NotFound {
		t.Fatalf("status = %d, want 404 when listdirs disabled and no index", s)
	}
}
