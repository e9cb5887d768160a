// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package pathnorm collapses "." / ".." / empty segments on an
// absolute request path, the way quark.c's normabspath() does.
package pathnorm

import (
	"errors"
	"strings"
)

// ErrNotAbsolute is returned when the input does not start with '/'.
var ErrNotAbsolute = errors.New("pathnorm: path is not absolute")

// Normalize walks path component by component after the leading '/':
//   - an empty component or "." is dropped.
//   - ".." is dropped, and also pops the previously retained component,
//     if any; at the root it is a no-op.
//   - anything else is retained.
//
// The result always starts with '/' and never contains "//", "/./" or
// "/../". A lone "/" normalizes to itself.
func Normalize(path string) (string, error) {
	if path == "" || path[0] != '/' {
		return "", ErrNotAbsolute
	}
	segments := strings.Split(path[1:], "/")
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
			// dropped
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, seg)
		}
	}
	return "/" + strings.Join(kept, "/"), nil
}
