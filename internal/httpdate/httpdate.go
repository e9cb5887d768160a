// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

// Package httpdate formats and parses the IMF-fixdate timestamps quark
// puts in Date, Last-Modified and If-Modified-Since.
package httpdate

import "time"

// Layout is the "%a, %d %b %Y %T GMT" strftime format from quark.c,
// expressed as a Go reference-time layout.
const Layout = "Mon, 02 Jan 2006 15:04:05 GMT"

// Format returns the IMF-fixdate string for t in UTC. A zero t means
// "now", matching quark.c's timestamp(0, buf) convention.
func Format(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(Layout)
}

// Parse parses an IMF-fixdate string as produced by Format. Any other
// layout is rejected: quark only ever emits and accepts this one form.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}
