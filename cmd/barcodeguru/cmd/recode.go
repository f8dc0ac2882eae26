package cmd

import (
	"fmt"

	barcodeguru "github.com/baditaflorin/go_barcode_guru"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/report"
	"github.com/spf13/cobra"
)

func newRecodeCmd(in *inputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "recode",
		Short: "Show each barcode in laser channels (M = A/C, K = G/T)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := in.logger()
			if err != nil {
				return err
			}
			defer log.Close()

			barcodes, _, err := in.readBarcodes(cmd, log)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.FormatRecoded(barcodes, barcodeguru.RecodeLasers(barcodes)))
			return nil
		},
	}
}
