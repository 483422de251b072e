// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"
	"github.com/ironcore-dev/passdev/internal/cmd/passdev"
	"github.com/ironcore-dev/passdev/internal/config"
)

func main() {
	logger := config.Load().Logger(os.Stderr)

	// A vanished reader has to surface as a write error instead of killing us silently.
	signal.Ignore(syscall.SIGPIPE)
	memguard.CatchInterrupt()

	if err := passdev.Command(logger).Execute(); err != nil {
		logger.Error(err)
		memguard.SafeExit(1)
	}
	memguard.SafeExit(0)
}
