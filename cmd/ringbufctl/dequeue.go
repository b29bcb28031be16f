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

var dequeueCmd = &cobra.Command{
	Use:   "dequeue <path>",
	Short: "Dequeue and print the oldest message",
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

		buf := make([]uint32, rb.Capacity())
		n, err := rb.Dequeue(buf)
		if err != nil {
			return err
		}
		log.Infow("dequeued message", "path", args[0], "words", buf[:n])
		return nil
	},
}
