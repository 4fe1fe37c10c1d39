package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

const (
	flagOutput = "output"
	flagStdout = "stdout"
)

// mustGetString reads a string flag that the command is expected to define.
func mustGetString(name string, flags *pflag.FlagSet) string {
	v, err := flags.GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag %q is not defined as a string: %v", name, err))
	}
	return v
}

func mustGetBool(name string, flags *pflag.FlagSet) bool {
	v, err := flags.GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag %q is not defined as a bool: %v", name, err))
	}
	return v
}
