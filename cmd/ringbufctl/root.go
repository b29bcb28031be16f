// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "ringbufctl",
	Short: "Create and poke at a file-backed MPMC ring buffer",
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(enqueueCmd)
	rootCmd.AddCommand(dequeueCmd)
}
