/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"fmt"
	"os"

	"github.com/named-data/ndnsim/std/log"
)

var Log = log.Default()
var logFileObj *os.File

// OpenLogger initializes the logger from the global configuration.
func OpenLogger() error {
	if C.Core.LogFile == "" {
		logFileObj = os.Stderr
	} else {
		var err error
		logFileObj, err = os.Create(C.Core.LogFile)
		if err != nil {
			return fmt.Errorf("unable to open log file: %w", err)
		}
	}

	level, err := log.ParseLevel(C.Core.LogLevel)
	if err != nil {
		return err
	}

	Log = log.NewText(logFileObj)
	Log.SetLevel(level)
	log.SetDefault(Log)
	return nil
}

// CloseLogger closes the log file, if any.
func CloseLogger() {
	if logFileObj != nil && logFileObj != os.Stderr {
		logFileObj.Close()
	}
	logFileObj = nil
}
