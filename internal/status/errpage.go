// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package status

import (
	"fmt"
	"io"
	"time"

	"github.com/quark-contrib/quark/internal/httpdate"
)

// WriteError emits a status line, a minimal header block and (unless
// headOnly, i.e. the request method was HEAD) an HTML body describing
// s. It returns the status that should end up in the access log: s
// itself, or RequestTimeout if the write failed partway through,
// mirroring quark.c's sendstatus() treating a dprintf failure as a
// client-side timeout rather than a server error.
func WriteError(w io.Writer, s Status, headOnly bool) Status {
	var allow string
	if s == MethodNotAllowed {
		allow = "Allow: HEAD, GET\r\n"
	}
	if _, err := fmt.Fprintf(w,
		"HTTP/1.1 %d %s\r\n"+
			"Date: %s\r\n"+
			"Connection: close\r\n"+
			"%s"+
			"Content-Type: text/html\r\n"+
			"\r\n",
		s, s.Phrase(), httpdate.Format(time.Time{}), allow); err != nil {
		return RequestTimeout
	}
	if headOnly {
		return s
	}
	if _, err := fmt.Fprintf(w,
		"<!DOCTYPE html>\n<html>\n\t<head>\n"+
			"\t\t<title>%d %s</title>\n\t</head>\n\t<body>\n"+
			"\t\t<h1>%d %s</h1>\n\t</body>\n</html>\n",
		s, s.Phrase(), s, s.Phrase()); err != nil {
		return RequestTimeout
	}
	return s
}
