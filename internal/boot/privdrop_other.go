// Copyright (c) 2020-2025 Zhang Jingcheng <diogin@gmail.com>.
// Copyright (c) 2022-2024 HexInfra Co., Ltd.
// All rights reserved.
// Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.

//go:build !unix

package boot

import "errors"

// dropPrivileges is unsupported on this platform. It returns an error
// when -u or -g was given and is a no-op when neither was.
func dropPrivileges(uid, gid int, dropUser, dropGroup bool) error {
	if dropUser || dropGroup {
		return errors.New("boot: privilege drop is not supported on this platform")
	}
	return nil
}
