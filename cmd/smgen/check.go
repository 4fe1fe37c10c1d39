package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	statemachine "github.com/statelang/go-statemachine"
	"github.com/statelang/go-statemachine/machine"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse statemachine blocks and report each compiled machine",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger()
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		arts, err := statemachine.CompileBlocks(string(data))
		if err != nil {
			logSyntaxError(log, path, err)
			return fmt.Errorf("check %s: %w", path, err)
		}
		for _, art := range arts {
			def := art.Definition
			if def.Dialect() == machine.Named {
				log.Info("machine", "file", path, "name", def.Name(), "dialect", def.Dialect().String(),
					"states", len(def.States()), "transitions", len(def.Transitions()))
			} else {
				log.Info("machine", "file", path, "name", def.Name(), "dialect", def.Dialect().String(),
					"states", len(def.States()))
			}
		}
	}
	return nil
}
