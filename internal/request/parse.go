// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"io"

	"github.com/quark-contrib/quark/internal/config"
	"github.com/quark-contrib/quark/internal/percent"
	"github.com/quark-contrib/quark/internal/status"
)

var crlfcrlf = []byte("\r\n\r\n")

var recognized = []struct {
	name string
	slot func(*Fields) *string
}{
	{"Range", func(f *Fields) *string { return &f.Range }},
	{"If-Modified-Since", func(f *Fields) *string { return &f.IfModifiedSince }},
}

// Parse reads one request off r, up to config.HeaderMax bytes, and
// parses the request line and recognized fields. On success it
// returns a populated Request and ok == true. On failure it returns
// the status the caller should route through status.WriteError; no
// bytes have been written to the connection yet.
func Parse(r io.Reader) (req *Request, s status.Status, ok bool) {
	header, s, ok := readHeader(r)
	if !ok {
		return nil, s, false
	}
	return parseHeader(header)
}

// readHeader reads until the four-byte CRLF CRLF terminator is at the
// tail of the buffer, the buffer fills, or the peer stops sending.
func readHeader(r io.Reader) (header []byte, s status.Status, ok bool) {
	buf := make([]byte, 0, config.HeaderMax)
	chunk := make([]byte, config.HeaderMax)
	for {
		n, err := r.Read(chunk[:config.HeaderMax-len(buf)])
		if n > 0 {
			buf = append(buf, chunk[:n]...)
			if len(buf) >= 4 && bytes.Equal(buf[len(buf)-4:], crlfcrlf) {
				return buf[:len(buf)-2], 0, true // strip the trailing blank line's CRLF
			}
			if len(buf) >= config.HeaderMax {
				return nil, status.RequestTooLarge, false
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil, status.BadRequest, false
			}
			return nil, status.RequestTimeout, false
		}
	}
}

func parseHeader(header []byte) (*Request, status.Status, bool) {
	method, p, s, ok := parseMethod(header)
	if !ok {
		return nil, s, false
	}

	q := bytes.IndexByte(header[p:], ' ')
	if q < 0 {
		return nil, status.BadRequest, false
	}
	q += p
	targetRaw := header[p:q]
	if len(targetRaw) > config.PathMax-1 {
		return nil, status.RequestTooLarge, false
	}
	target := percent.Decode(string(targetRaw))
	p = q + 1

	p, s, ok = parseVersion(header, p)
	if !ok {
		return nil, s, false
	}

	fields, s, ok := parseFields(header, p)
	if !ok {
		return nil, s, false
	}

	return &Request{Method: method, Target: target, Fields: fields}, 0, true
}

func parseMethod(header []byte) (method Method, rest int, s status.Status, ok bool) {
	switch {
	case bytes.HasPrefix(header, []byte("HEAD")):
		method, rest = HEAD, len("HEAD")
	case bytes.HasPrefix(header, []byte("GET")):
		method, rest = GET, len("GET")
	default:
		return 0, 0, status.MethodNotAllowed, false
	}
	if rest >= len(header) || header[rest] != ' ' {
		return 0, 0, status.BadRequest, false
	}
	return method, rest + 1, 0, true
}

func parseVersion(header []byte, p int) (int, status.Status, bool) {
	const prefix = "HTTP/"
	if !bytes.HasPrefix(header[p:], []byte(prefix)) {
		return 0, status.BadRequest, false
	}
	p += len(prefix)
	if !bytes.HasPrefix(header[p:], []byte("1.0")) && !bytes.HasPrefix(header[p:], []byte("1.1")) {
		return 0, status.VersionNotSupported, false
	}
	p += len("1.0")
	if !bytes.HasPrefix(header[p:], []byte("\r\n")) {
		return 0, status.BadRequest, false
	}
	return p + 2, 0, true
}

func parseFields(header []byte, p int) (Fields, status.Status, bool) {
	var fields Fields
	for p < len(header) {
		matched := false
		for _, r := range recognized {
			if !bytes.HasPrefix(header[p:], []byte(r.name)) {
				continue
			}
			matched = true
			p += len(r.name)
			if p >= len(header) || header[p] != ':' {
				return fields, status.BadRequest, false
			}
			p++
			for p < len(header) && header[p] == ' ' {
				p++
			}
			end := bytes.Index(header[p:], []byte("\r\n"))
			if end < 0 {
				return fields, status.BadRequest, false
			}
			value := header[p : p+end]
			if len(value) > config.FieldMax-1 {
				return fields, status.RequestTooLarge, false
			}
			*r.slot(&fields) = string(value)
			p += end + 2
			break
		}
		if matched {
			continue
		}
		end := bytes.Index(header[p:], []byte("\r\n"))
		if end < 0 {
			return fields, status.BadRequest, false
		}
		p += end + 2
	}
	return fields, 0, true
}
