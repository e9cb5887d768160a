// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package status holds the closed set of HTTP status codes quark emits.
package status

// Status is one of the handful of response codes quark knows how to send.
type Status int16

const (
	OK                  Status = 200
	PartialContent      Status = 206
	MovedPermanently    Status = 301
	NotModified         Status = 304
	BadRequest          Status = 400
	Forbidden           Status = 403
	NotFound            Status = 404
	MethodNotAllowed    Status = 405
	RequestTimeout      Status = 408
	RequestTooLarge     Status = 431
	InternalServerError Status = 500
	VersionNotSupported Status = 505
)

var phrases = map[Status]string{
	OK:                  "OK",
	PartialContent:      "Partial Content",
	MovedPermanently:    "Moved Permanently",
	NotModified:         "Not Modified",
	BadRequest:          "Bad Request",
	Forbidden:           "Forbidden",
	NotFound:            "Not Found",
	MethodNotAllowed:    "Method Not Allowed",
	RequestTimeout:      "Request Time-out",
	RequestTooLarge:     "Request Header Fields Too Large",
	InternalServerError: "Internal Server Error",
	VersionNotSupported: "HTTP Version not supported",
}

// Phrase returns the canonical reason phrase for s, or "Unknown" for a
// status this package does not define.
func (s Status) Phrase() string {
	if p, ok := phrases[s]; ok {
		return p
	}
	return "Unknown"
}
