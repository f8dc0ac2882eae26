// barcodeguru checks a list of sequencing index barcodes for pooling
// compatibility on one lane.
package main

import (
	"os"

	"github.com/baditaflorin/go_barcode_guru/cmd/barcodeguru/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
