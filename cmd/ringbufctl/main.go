// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Command ringbufctl creates, inspects, and exercises a file-backed
// ring buffer from the shell. It is the "external collaborator" the
// ringbuf package's protocol assumes: file creation, validation
// reporting, and teardown, with nothing clever about the concurrency
// protocol itself.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() (*zap.SugaredLogger, func(), error) {
	config := zap.NewDevelopmentConfig()
	config.Development = false

	logger, err := config.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.Sugar(), func() { _ = logger.Sync() }, nil
}
