// Copyright 2024 trim21 <trim21.me@gmail.com>
// SPDX-License-Identifier: GPL-3.0-only

package global

import "runtime"

const IsLinux = runtime.GOOS == "linux"
