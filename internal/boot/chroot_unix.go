// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

//go:build unix

package boot

import "syscall"

// chroot confines the process to dir, matching quark.c's chroot(".")
// after chdir(servedir).
func chroot(dir string) error {
	return syscall.Chroot(dir)
}
