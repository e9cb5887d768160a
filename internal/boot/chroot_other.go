// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

//go:build !unix

package boot

import "errors"

// chroot is unsupported on this platform: there is no chroot(2)
// analogue. This is a REDESIGN from quark.c's unconditional chroot
// (see SPEC_FULL.md §6.2 and DESIGN.md); Setup surfaces this as a
// startup error rather than silently skipping the confinement step.
func chroot(dir string) error {
	return errors.New("boot: chroot is not supported on this platform")
}
