// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package response stats the request target, enforces quark's policy
// (hidden-file rejection, redirect, index resolution, conditional and
// range requests) and emits the response headers and body, the way
// quark.c's sendresponse() does.
package response

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/quark-contrib/quark/internal/config"
	"github.com/quark-contrib/quark/internal/httpdate"
	"github.com/quark-contrib/quark/internal/pathnorm"
	"github.com/quark-contrib/quark/internal/percent"
	"github.com/quark-contrib/quark/internal/request"
	"github.com/quark-contrib/quark/internal/status"
)

// zeroTime signals httpdate.Format to use "now".
var zeroTime time.Time

// sendFileChunk is the fixed-size read/write unit §4.F.10 names (the
// teacher's equivalent would be its file-serving chunk size; quark.c
// uses BUFSIZ, conventionally 8 KiB on Linux).
const sendFileChunk = 8192

// Respond is the response generator, component F. root is the
// filesystem directory the (already chrooted, in production) process
// serves out of; it lets tests exercise this exact code path without
// needing root privileges to chroot for real.
func Respond(w io.Writer, req *request.Request, cfg *config.Config, root string) status.Status {
	headOnly := req.Method == request.HEAD

	// 1. Normalize.
	realtarget, err := pathnorm.Normalize(req.Target)
	if err != nil {
		return status.WriteError(w, status.BadRequest, headOnly)
	}

	// 2. Hidden-file rejection.
	if strings.HasPrefix(realtarget, ".") || strings.Contains(realtarget, "/.") {
		return status.WriteError(w, status.Forbidden, headOnly)
	}

	// 3. Stat.
	fsPath := filepath.Join(root, realtarget)
	st, statErr := os.Stat(fsPath)
	if statErr != nil {
		if errors.Is(statErr, fs.ErrPermission) {
			return status.WriteError(w, status.Forbidden, headOnly)
		}
		return status.WriteError(w, status.NotFound, headOnly)
	}

	// 4. Directory trailing slash.
	isDir := st.IsDir()
	if isDir && !strings.HasSuffix(realtarget, "/") {
		if len(realtarget)+1 > config.PathMax-1 {
			return status.WriteError(w, status.RequestTooLarge, headOnly)
		}
		realtarget += "/"
	}

	// 5. Canonical redirect.
	if realtarget != req.Target {
		return writeRedirect(w, percent.Encode(realtarget))
	}

	// 6. Directory content resolution.
	if isDir {
		indexTarget := realtarget + cfg.DocIndex
		if len(indexTarget) > config.PathMax-1 {
			return status.WriteError(w, status.RequestTooLarge, headOnly)
		}
		indexPath := filepath.Join(root, indexTarget)
		indexSt, indexErr := os.Stat(indexPath)
		if indexErr == nil && indexSt.Mode().IsRegular() {
			realtarget, fsPath, st = indexTarget, indexPath, indexSt
		} else if cfg.ListDirs {
			if err := sendDir(w, fsPath, realtarget, headOnly); err != nil {
				return status.RequestTimeout
			}
			return status.OK
		} else {
			if errors.Is(indexErr, fs.ErrPermission) || (indexErr == nil && !indexSt.Mode().IsRegular()) {
				return status.WriteError(w, status.Forbidden, headOnly)
			}
			return status.WriteError(w, status.NotFound, headOnly)
		}
	}

	// 7. If-Modified-Since.
	if req.Fields.IfModifiedSince != "" {
		parsed, perr := httpdate.Parse(req.Fields.IfModifiedSince)
		if perr != nil {
			return status.WriteError(w, status.BadRequest, headOnly)
		}
		if !st.ModTime().UTC().After(parsed.UTC()) {
			return writeNotModified(w)
		}
	}

	// 8. Range.
	size := st.Size()
	lower, upper := int64(0), size // upper is an exclusive bound throughout
	isRange := false
	if req.Fields.Range != "" {
		isRange = true
		l, u, ok := parseRange(req.Fields.Range, size)
		if !ok {
			return status.WriteError(w, status.BadRequest, headOnly)
		}
		lower, upper = l, u
	}

	// 9. MIME.
	mimeType := cfg.Mimes.Lookup(realtarget)

	// 10. Send file.
	return sendFile(w, fsPath, headOnly, st, mimeType, lower, upper, isRange, size)
}

func sendFile(w io.Writer, fsPath string, headOnly bool, st os.FileInfo, mimeType string, lower, upper int64, isRange bool, size int64) status.Status {
	f, err := os.Open(fsPath)
	if err != nil {
		return status.WriteError(w, status.Forbidden, headOnly)
	}
	defer f.Close()

	if _, err := f.Seek(lower, io.SeekStart); err != nil {
		return status.WriteError(w, status.InternalServerError, headOnly)
	}

	s := status.OK
	if isRange {
		s = status.PartialContent
	}
	contentLength := upper - lower

	var b strings.Builder
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", s, s.Phrase())
	fmt.Fprintf(&b, "Date: %s\r\n", httpdate.Format(zeroTime))
	b.WriteString("Connection: close\r\n")
	fmt.Fprintf(&b, "Last-Modified: %s\r\n", httpdate.Format(st.ModTime()))
	fmt.Fprintf(&b, "Content-Type: %s\r\n", mimeType)
	fmt.Fprintf(&b, "Content-Length: %d\r\n", contentLength)
	if isRange {
		fmt.Fprintf(&b, "Content-Range: bytes %d-%d/%d\r\n", lower, upper-1, size)
	}
	b.WriteString("\r\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return status.RequestTimeout
	}

	if headOnly {
		return s
	}

	remaining := contentLength
	buf := make([]byte, sendFileChunk)
	for remaining > 0 {
		n := int64(len(buf))
		if remaining < n {
			n = remaining
		}
		read, err := f.Read(buf[:n])
		if read > 0 {
			if _, werr := w.Write(buf[:read]); werr != nil {
				return status.RequestTimeout
			}
			remaining -= int64(read)
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return status.InternalServerError
		}
	}
	return s
}

func writeRedirect(w io.Writer, location string) status.Status {
	if _, err := fmt.Fprintf(w,
		"HTTP/1.1 %d %s\r\n"+
			"Date: %s\r\n"+
			"Connection: close\r\n"+
			"Location: %s\r\n"+
			"\r\n",
		status.MovedPermanently, status.MovedPermanently.Phrase(), httpdate.Format(zeroTime), location); err != nil {
		return status.RequestTimeout
	}
	return status.MovedPermanently
}

func writeNotModified(w io.Writer) status.Status {
	if _, err := fmt.Fprintf(w,
		"HTTP/1.1 %d %s\r\n"+
			"Date: %s\r\n"+
			"Connection: close\r\n"+
			"\r\n",
		status.NotModified, status.NotModified.Phrase(), httpdate.Format(zeroTime)); err != nil {
		return status.RequestTimeout
	}
	return status.NotModified
}

// parseRange parses a "bytes=lower-upper" field value. Either bound
// may be empty (defaulting to 0 / size). A literal upper bound is an
// inclusive byte position, converted here to the exclusive bound used
// throughout this package so Content-Length and the streamed byte
// count never disagree (see SPEC_FULL.md §11, Open Question 3).
func parseRange(value string, size int64) (lower, upper int64, ok bool) {
	const prefix = "bytes="
	if !strings.HasPrefix(value, prefix) {
		return 0, 0, false
	}
	spec := value[len(prefix):]
	dash := strings.IndexByte(spec, '-')
	if dash < 0 {
		return 0, 0, false
	}
	lowerStr, upperStr := spec[:dash], spec[dash+1:]

	lower = 0
	if lowerStr != "" {
		v, err := strconv.ParseInt(lowerStr, 10, 63)
		if err != nil || v < 0 {
			return 0, 0, false
		}
		lower = v
	}

	upper = size
	if upperStr != "" {
		v, err := strconv.ParseInt(upperStr, 10, 63)
		if err != nil || v < 0 {
			return 0, 0, false
		}
		if lower > v {
			return 0, 0, false
		}
		upper = v + 1
	}
	if upper > size {
		upper = size
	}
	if lower > upper {
		return 0, 0, false
	}
	return lower, upper, true
}
