// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

//go:build !(linux || freebsd || netbsd || openbsd)

package boot

// raiseNProcLimit is a no-op on platforms without RLIMIT_NPROC (e.g.
// Darwin, Windows, Plan 9). Unlike chroot and privilege drop, a
// missing process-count cap is not a security boundary quark relies
// on, so Setup proceeds rather than refusing to start.
func raiseNProcLimit(max uint64) error {
	return nil
}
