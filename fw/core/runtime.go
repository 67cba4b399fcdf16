/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import "time"

// Version of the simulator, set by the linker.
var Version string = "unknown"

// StartTimestamp is the time the current run was started.
var StartTimestamp time.Time
