package hwinfo

import (
	"context"
	"encoding/json"
	"os"
)

// licenseState is the on-disk shape written by the provisioning pipeline.
type licenseState struct {
	Products []licenseProductEntry `json:"products"`
}

type licenseProductEntry struct {
	Name              string `json:"name"`
	PartialProductKey string `json:"partial_product_key"`
	StatusCode        int    `json:"status_code"`
}

// LicenseProducts reads the platform licensing state exported during
// provisioning. Platforms without a licensing subsystem simply have no
// state file and report the domain as unsupported. Product order is
// preserved from the file; downstream selection is first-match.
func (p *platformProvider) LicenseProducts(ctx context.Context) ([]LicenseProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, translate("license state", err)
	}

	raw, err := os.ReadFile(p.cfg.LicenseStatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, failUnsupported("no licensing state on this platform")
		}
		return nil, translate("license state", err)
	}

	var state licenseState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, failDataQuality("licensing state file is malformed")
	}

	products := make([]LicenseProduct, 0, len(state.Products))
	for _, entry := range state.Products {
		products = append(products, LicenseProduct{
			Name:              entry.Name,
			PartialProductKey: entry.PartialProductKey,
			StatusCode:        entry.StatusCode,
		})
	}

	return products, nil
}
