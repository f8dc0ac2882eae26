package cmd

import (
	"errors"
	"fmt"

	barcodeguru "github.com/baditaflorin/go_barcode_guru"
	"github.com/baditaflorin/go_barcode_guru/internal/adapters/report"
	"github.com/spf13/cobra"
)

func newMatrixCmd(in *inputFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the pairwise similarity and position weight matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := in.logger()
			if err != nil {
				return err
			}
			defer log.Close()

			barcodes, labels, err := in.readBarcodes(cmd, log)
			if err != nil {
				return err
			}
			if !barcodeguru.UniformLength(barcodes) {
				return errors.New("index length mismatch(es) detected; matrices need equal-length barcodes")
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, report.FormatSimilarities(barcodes, labels, barcodeguru.SimilarityMatrixOf(barcodes)))
			fmt.Fprintln(out)
			fmt.Fprint(out, report.FormatFrequencies(barcodeguru.FrequencyMatrixOf(barcodes)))
			return nil
		},
	}
}
