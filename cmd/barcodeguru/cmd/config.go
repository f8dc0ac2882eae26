package cmd

import (
	"fmt"

	barcodeguru "github.com/baditaflorin/go_barcode_guru"
	"github.com/spf13/cobra"
)

func newConfigCmd(in *inputFlags, rf *ruleFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective rule configuration as YAML",
		Long:  "Merges defaults, the --config file and explicit flags; the output is a valid --config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := rf.ruleConfig(cmd)
			if err != nil {
				return err
			}
			log, err := in.logger()
			if err != nil {
				return err
			}
			defer log.Close()

			guru, err := barcodeguru.New(barcodeguru.WithLogger(log), barcodeguru.WithRuleConfig(rc))
			if err != nil {
				return fmt.Errorf("invalid rule configuration: %w", err)
			}
			data, err := guru.RuleConfig().YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
