/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/voedger/mirror/pkg/goutils/cobrau"
)

//go:embed version
var version string

type mirrorParams struct {
	ConfigFile string
}

func main() {
	if err := execRootCmd(os.Args, version, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string, stdout, stderr io.Writer) error {
	params := &mirrorParams{}
	rootCmd := cobrau.PrepareRootCmd(
		"mirror",
		"filter reflective declarations and control their accessibility",
		args,
		ver,
		newPolicyCmd(params),
		newInspectCmd(params),
	)
	rootCmd.PersistentFlags().StringVar(&params.ConfigFile, "config", "", "config file (default is ./mirror.yaml)")
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
