package proposal

import (
	"errors"
	"fmt"

	"github.com/lvillar/proposal/pageops"
	"github.com/lvillar/proposal/render"
)

// Sentinel errors for generation failures. The render and stitch sentinels
// are re-exported so callers need not import those packages to test for
// them.
var (
	ErrNoPages          = render.ErrNoPages
	ErrLayoutIncomplete = render.ErrLayoutIncomplete
	ErrAlreadyStamped   = render.ErrAlreadyStamped
	ErrNothingStitched  = pageops.ErrEmpty

	ErrNoEncoder     = errors.New("proposal: no word encoder configured")
	ErrConversion    = errors.New("proposal: conversion failed")
	ErrEmptyArtifact = errors.New("proposal: empty artifact")
)

// GenerateError is a failure in one stage of the generation pipeline. It
// wraps the underlying error and names the stage.
type GenerateError struct {
	Op  string // stage name, e.g. "layout", "stitch", "convert"
	Err error  // underlying error
}

func (e *GenerateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("proposal.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("proposal.%s: unknown error", e.Op)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}

func newGenerateError(op string, err error) *GenerateError {
	return &GenerateError{Op: op, Err: err}
}
