// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math/rand/v2"

	"github.com/tenderboard/tenderboard/models"
)

// RandomTender picks a tender uniformly at random. Returns the zero Tender
// for an empty list.
func RandomTender(tenders []models.Tender) models.Tender {
	if len(tenders) == 0 {
		return models.Tender{}
	}
	return tenders[rand.IntN(len(tenders))]
}
