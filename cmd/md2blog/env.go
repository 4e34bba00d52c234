package main

import (
	"io"
	"os"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	WorkDir string // Blog root; config paths resolve against it
}

// DefaultEnv returns the production environment rooted at the working directory.
func DefaultEnv() *Environment {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		WorkDir: wd,
	}
}
