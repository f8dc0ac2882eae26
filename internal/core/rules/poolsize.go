package rules

import "github.com/baditaflorin/go_barcode_guru/internal/core/domain"

// PoolSizeRule allows a single unpooled sample or four and more pooled
// samples per lane. Zero samples fails.
type PoolSizeRule struct{}

func (PoolSizeRule) Name() string { return NamePoolSize }

func (PoolSizeRule) Evaluate(barcodes domain.BarcodeSet) domain.Verdict {
	n := len(barcodes)
	if n == 1 || n > 3 {
		return domain.OK(NamePoolSize)
	}
	detail := "no. of samples/lane cannot be 2 or 3"
	if n == 0 {
		detail = "no samples supplied"
	}
	v := domain.Failed(NamePoolSize, detail)
	v.Details = map[string]interface{}{"samples": n}
	return v
}
