//go:build !linux

package main

import (
	"errors"

	"github.com/google/arm-gic/platform"
)

func run(*platform.Board, string) error {
	return errors.New("mapping physical memory is only supported on linux")
}
