// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

//go:build linux || freebsd || netbsd || openbsd

package boot

import "syscall"

// raiseNProcLimit raises RLIMIT_NPROC's soft and hard limits to max,
// matching quark.c's setrlimit(RLIMIT_NPROC, ...) in main().
func raiseNProcLimit(max uint64) error {
	return syscall.Setrlimit(rlimitNProc, &syscall.Rlimit{Cur: max, Max: max})
}
