/*
 * Copyright (c) 2026-present Sigma-Soft, Ltd.
 */

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPolicyCmd(params *mirrorParams) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "print effective host elevation policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(params.ConfigFile, nil)
			if err != nil {
				return err
			}
			p, err := cfg.HostPolicy()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(p)
		},
	}
}
