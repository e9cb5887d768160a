// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package mimetype maps a filename suffix to a content type, the way
// quark.c's sendresponse() walks its static mimes[] table.
package mimetype

import "strings"

// DefaultType is returned when the path has no suffix, or the suffix
// is not present in the table.
const DefaultType = "application/octet-stream"

// Table is an ordered (extension, content-type) mapping. Lookup is
// case-sensitive, exact-match only: no wildcarding, no charset params.
type Table []Entry

// Entry is one (extension, content-type) pair.
type Entry struct {
	Ext  string
	Type string
}

// Lookup finds the last '.' in path; the suffix after it is compared
// against t in order, first match wins. No dot, or no match, yields
// DefaultType.
func (t Table) Lookup(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return DefaultType
	}
	ext := path[i+1:]
	for _, e := range t {
		if e.Ext == ext {
			return e.Type
		}
	}
	return DefaultType
}

// Default is the built-in table quark ships with, adapted from the
// teacher's staticDefaultMimeTypes (hemi/web_static.go), keyed the
// same way (bare extension, no leading dot).
var Default = Table{
	{"7z", "application/x-7z-compressed"},
	{"atom", "application/atom+xml"},
	{"bin", "application/octet-stream"},
	{"bmp", "image/x-ms-bmp"},
	{"css", "text/css"},
	{"deb", "application/octet-stream"},
	{"dll", "application/octet-stream"},
	{"doc", "application/msword"},
	{"dmg", "application/octet-stream"},
	{"exe", "application/octet-stream"},
	{"flv", "video/x-flv"},
	{"gif", "image/gif"},
	{"gz", "application/gzip"},
	{"htm", "text/html"},
	{"html", "text/html"},
	{"ico", "image/x-icon"},
	{"img", "application/octet-stream"},
	{"iso", "application/octet-stream"},
	{"jar", "application/java-archive"},
	{"jpg", "image/jpeg"},
	{"jpeg", "image/jpeg"},
	{"js", "application/javascript"},
	{"json", "application/json"},
	{"m4a", "audio/x-m4a"},
	{"mov", "video/quicktime"},
	{"mp3", "audio/mpeg"},
	{"mp4", "video/mp4"},
	{"mpeg", "video/mpeg"},
	{"mpg", "video/mpeg"},
	{"pdf", "application/pdf"},
	{"png", "image/png"},
	{"ppt", "application/vnd.ms-powerpoint"},
	{"ps", "application/postscript"},
	{"rar", "application/x-rar-compressed"},
	{"rss", "application/rss+xml"},
	{"rtf", "application/rtf"},
	{"svg", "image/svg+xml"},
	{"tar", "application/x-tar"},
	{"txt", "text/plain"},
	{"war", "application/java-archive"},
	{"webm", "video/webm"},
	{"webp", "image/webp"},
	{"woff", "font/woff"},
	{"woff2", "font/woff2"},
	{"xls", "application/vnd.ms-excel"},
	{"xml", "text/xml"},
	{"zip", "application/zip"},
}
