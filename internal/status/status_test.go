// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package status

import "testing"

func TestPhraseKnown(t *testing.T) {
	cases := []struct {
		s    Status
		want string
	}{
		{OK, "OK"},
		{PartialContent, "Partial Content"},
		{MovedPermanently, "Moved Permanently"},
		{NotModified, "Not Modified"},
		{BadRequest, "Bad Request"},
		{Forbidden, "Forbidden"},
		{NotFound, "Not Found"},
		{MethodNotAllowed, "Method Not Allowed"},
		{RequestTimeout, "Request Time-out"},
		{RequestTooLarge, "Request Header Fields Too Large"},
		{InternalServerError, "Internal Server Error"},
		{VersionNotSupported, "HTTP Version not supported"},
	}
	for _, c := range cases {
		if got := c.s.Phrase(); got != c.want {
			t.Errorf("Status(%d).Phrase() = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestPhraseUnknown(t *testing.T) {
	if got := Status(999).Phrase(); got != "Unknown" {
		t.Errorf("Phrase() for unmapped status = %q, want Unknown", got)
	}
}
