// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package keyfile

import "errors"

var (
	// ErrUsage is returned when the command is not invoked with exactly one key file path.
	ErrUsage = errors.New("incorrect number of arguments")

	// ErrNotFound is returned when the key file path does not exist.
	ErrNotFound = errors.New("file doesn't exist")

	// ErrStat is returned when the key file exists but its metadata cannot be read.
	ErrStat = errors.New("unable to stat file")

	// ErrInvalidSize is returned when the size probe reports a size that cannot be a key file.
	ErrInvalidSize = errors.New("invalid keyfile size")

	// ErrOpen is returned when the key file cannot be opened for reading.
	ErrOpen = errors.New("failed to open keyfile")

	// ErrAlloc is returned when no buffer can be allocated for the key.
	ErrAlloc = errors.New("failed to allocate memory")

	// ErrShortRead is returned when fewer bytes than probed could be read.
	ErrShortRead = errors.New("failed to read entire key")

	// ErrShortWrite is returned when the output did not accept the whole key.
	ErrShortWrite = errors.New("failed to write entire key")
)

// IsUsage returns true if the error is or wraps ErrUsage.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}

// IsNotFound returns true if the error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsShortRead returns true if the error is or wraps ErrShortRead.
func IsShortRead(err error) bool {
	return errors.Is(err, ErrShortRead)
}

// IsShortWrite returns true if the error is or wraps ErrShortWrite.
func IsShortWrite(err error) bool {
	return errors.Is(err, ErrShortWrite)
}
