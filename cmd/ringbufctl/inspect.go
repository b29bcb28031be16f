// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ringio/filering/ringbuf"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Attach to a ring buffer file and report its occupancy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, sync, err := newLogger()
		if err != nil {
			return err
		}
		defer sync()

		rb, err := ringbuf.Attach(args[0])
		if err != nil {
			return err
		}
		defer rb.Detach()

		log.Infow("ring buffer occupancy",
			"path", args[0],
			"capacity", rb.Capacity(),
			"entries", rb.NBEntries(),
			"free", rb.NBFree(),
		)
		return nil
	},
}
