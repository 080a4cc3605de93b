package memory

import "mesa-placements/internal/seed"

// Seed loads the demo catalog into empty in-memory stores.
func Seed(catalog *Catalog, pricing *PricingTable) error {
	for _, pf := range seed.Platforms() {
		pf = catalog.AddPlatform(pf)
		for _, pl := range seed.Placements(pf.ID) {
			if _, err := catalog.AddPlacement(pl); err != nil {
				return err
			}
		}
	}
	for _, row := range seed.RegionalPricing() {
		pricing.Add(row)
	}
	return nil
}
