// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

//go:build freebsd || netbsd || openbsd

package boot

// rlimitNProc is the RLIMIT_NPROC resource number, which the syscall
// package does not export on this platform.
const rlimitNProc = 0x7
