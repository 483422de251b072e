// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package passdev

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/ironcore-dev/passdev/internal/keyfile"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const use = "passdev <keyfile>"

func Command(logger *log.Logger, opts ...keyfile.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: "Write the contents of a key file to standard output",
		Long: `passdev - Emit a key file

Reads the given key file into locked memory and writes its contents, unmodified,
to standard output. Meant to be used as a keyscript in disk decryption pipelines.

Diagnostics are written to standard error. Set DEBUG=1 to see every step.`,
		Args: exactlyOneArg,
		// The single argument is always the key file path, even if it looks like a flag.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(logger, args[0], cmd.OutOrStdout(), opts...)
		},
	}
	return cmd
}

func exactlyOneArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected 1, got %d (usage: %s)", keyfile.ErrUsage, len(args), use)
	}
	return nil
}

// Run emits the key file at path to out.
func Run(logger *log.Logger, path string, out io.Writer, opts ...keyfile.Option) error {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logger.Debug("Standard output is a terminal, the key will be visible")
	}

	if _, err := keyfile.NewEmitter(logger, opts...).Emit(path, out); err != nil {
		return err
	}
	return nil
}
