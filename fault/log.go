// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// time for the log writer to catch up before panicking
const panicDelay = 100 * time.Millisecond

// channel for the last message before a panic
var log *logger.L

// Initialise - open the PANIC log channel
func Initialise() error {
	if nil != log {
		return ErrPanicLogAlreadyOpen
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush the PANIC channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// PanicIfError - log the caller location and message then panic if err is set
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}

	s := fmt.Sprintf("%s failed with error: %v", message, err)
	if _, file, line, ok := runtime.Caller(1); ok {
		s = fmt.Sprintf("(%q:%d) %s", file, line, s)
	}

	if nil == log {
		fmt.Printf("*** %s\n", s)
	} else {
		log.Critical(s)
		log.Flush()
	}
	time.Sleep(panicDelay)
	panic(s)
}
