// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

//go:build !unix

package ringbuf

import (
	"errors"
	"os"
)

func mmapFile(f *os.File, size int64) ([]byte, error) {
	return nil, errors.New("ringbuf: file-backed mapping is not supported on this platform")
}

func munmapFile(b []byte) error {
	return errors.New("ringbuf: file-backed mapping is not supported on this platform")
}
