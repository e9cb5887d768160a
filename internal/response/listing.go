// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package response

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/quark-contrib/quark/internal/httpdate"
)

// htmlEscape escapes only the three characters the teacher's
// staticEscape (hemi/web_static.go) escapes, applied to both the href
// and the visible text. Entry names are not percent-encoded — see
// SPEC_FULL.md's Open Question 1.
var htmlEscape = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace

type dirEntry struct {
	name   string
	isDir  bool
	suffix string // '/', '|', '@', '=' for dir, FIFO, symlink, socket
}

// listDir scans dirPath, producing the sorted, dotfile-filtered entry
// list spec.md §4.G describes: directories first (DT_DIR-first),
// then lexicographic byte-wise order.
func listDir(dirPath string) ([]dirEntry, error) {
	raw, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	entries := make([]dirEntry, 0, len(raw))
	for _, d := range raw {
		name := d.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		suffix := ""
		if d.IsDir() {
			suffix = "/"
		} else if info, err := os.Lstat(filepath.Join(dirPath, name)); err == nil {
			switch {
			case info.Mode()&os.ModeNamedPipe != 0:
				suffix = "|"
			case info.Mode()&os.ModeSymlink != 0:
				suffix = "@"
			case info.Mode()&os.ModeSocket != 0:
				suffix = "="
			}
		}
		entries = append(entries, dirEntry{name: name, isDir: d.IsDir(), suffix: suffix})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return entries[i].name < entries[j].name
	})
	return entries, nil
}

// sendDir implements §4.G end to end: it stats nothing itself (the
// caller already resolved dirPath to a real directory), reads it, and
// emits the 200 listing response. headOnly suppresses the body.
func sendDir(w io.Writer, dirPath string, displayName string, headOnly bool) error {
	entries, err := listDir(dirPath)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"HTTP/1.1 200 OK\r\n"+
			"Date: %s\r\n"+
			"Connection: close\r\n"+
			"Content-Type: text/html\r\n"+
			"\r\n",
		httpdate.Format(zeroTime)); err != nil {
		return err
	}
	if headOnly {
		return nil
	}
	if _, err := fmt.Fprintf(w,
		"<!DOCTYPE html>\n<html>\n\t<head><title>Index of %s</title></head>\n\t<body>\n\t\t<a href=\"..\">..</a>",
		htmlEscape(displayName)); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "<br />\n\t\t<a href=\"%s\">%s%s</a>", htmlEscape(e.name), htmlEscape(e.name), e.suffix); err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(w, "\n\t</body>\n</html>\n")
	return err
}
