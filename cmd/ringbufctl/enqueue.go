// Copyright (c) 2026 ringio contributors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ringio/filering/ringbuf"
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue <path> <word>...",
	Short: "Enqueue one message made of the given 32-bit words",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		words := make([]uint32, len(args)-1)
		for i, arg := range args[1:] {
			v, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				return fmt.Errorf("invalid word %q: %w", arg, err)
			}
			words[i] = uint32(v)
		}

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

		if err := rb.Enqueue(words); err != nil {
			return err
		}
		log.Infow("enqueued message", "path", args[0], "words", words)
		return nil
	},
}
