// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

//go:build unix

package boot

import "syscall"

// dropPrivileges drops group first, then user, matching quark.c's
// ordering: setgroups, setgid, then setuid (dropping uid first would
// leave the process unable to change gid afterwards).
func dropPrivileges(uid, gid int, dropUser, dropGroup bool) error {
	if dropGroup {
		if err := syscall.Setgroups([]int{gid}); err != nil {
			return err
		}
		if err := syscall.Setgid(gid); err != nil {
			return err
		}
	}
	if dropUser {
		if err := syscall.Setuid(uid); err != nil {
			return err
		}
	}
	return nil
}
