// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

package pathnorm

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"/", "/"},
		{"/a/b", "/a/b"},
		{"/a//b", "/a/b"},
		{"/a/./b", "/a/b"},
		{"/a/../b", "/b"},
		{"/../a", "/a"},
		{"/../../a", "/a"},
		{"/a//b/../c", "/a/c"},
		{"/a/b/..", "/a"},
		{"/a/b/../..", "/"},
		{"//", "/"},
	}
	for _, c := range cases {
		got, err := Normalize(c.in)
		if err != nil {
			t.Fatalf("Normalize(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeRejectsRelative(t *testing.T) {
	if _, err := Normalize("a/b"); err == nil {
		t.Fatal("expected error for non-absolute path")
	}
	if _, err := Normalize(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestNormalizeNeverEscapesRoot(t *testing.T) {
	inputs := []string{"/..", "/../..", "/a/../../..", "/./../"}
	for _, in := range inputs {
		got, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q) error: %v", in, err)
		}
		if len(got) == 0 || got[0] != '/' {
			t.Errorf("Normalize(%q) = %q, does not start with /", in, got)
		}
		if containsAny(got, "//", "/./", "/../") {
			t.Errorf("Normalize(%q) = %q, contains a non-canonical sequence", in, got)
		}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		for i := 0; i+len(sub) <= len(s); i++ {
			if s[i:i+len(sub)] == sub {
				return true
			}
		}
	}
	return false
}
