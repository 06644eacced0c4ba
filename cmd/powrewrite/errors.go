package main

import "errors"

// Sentinel errors for command operations
var (
	ErrInputsMutuallyExclusive = errors.New("an expression argument, --file and --stdin are mutually exclusive")
	ErrStdinIsTerminal         = errors.New("--stdin reads lines from a pipe or file, but stdin is a terminal")
	ErrLinesFailed             = errors.New("some lines could not be rewritten")
)
