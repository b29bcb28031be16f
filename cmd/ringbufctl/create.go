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

var createCmd = &cobra.Command{
	Use:   "create <path> <nb-words>",
	Short: "Create a new ring buffer file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nbWords, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid nb-words %q: %w", args[1], err)
		}

		log, sync, err := newLogger()
		if err != nil {
			return err
		}
		defer sync()

		if err := ringbuf.Create(args[0], uint32(nbWords)); err != nil {
			return err
		}
		log.Infow("created ring buffer", "path", args[0], "nb_words", nbWords)
		return nil
	},
}
