// Copyright (C) 2024 LetMe Accommodation Ltd.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package listing

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/letme-homes/letme/internal/database/models"
	"github.com/letme-homes/letme/internal/utils"
)

// Summarize turns properties with nested units into display-ready summaries.
// Only units with Available = true count towards the availability figure and
// the price range - an occupied penthouse must not stretch the public range.
func Summarize(properties []models.Property) []PropertySummary {
	return utils.Map(properties, summarizeProperty)
}

func summarizeProperty(property models.Property) PropertySummary {
	availableUnits := utils.Filter(property.Units, func(unit models.Unit) bool {
		return unit.Available
	})

	summary := toSummary(property)
	summary.AvailableCount = len(availableUnits)

	for _, unit := range availableUnits {
		if summary.MinPrice == nil || unit.MonthlyPrice < *summary.MinPrice {
			summary.MinPrice = utils.Ptr(unit.MonthlyPrice)
		}
		if summary.MaxPrice == nil || unit.MonthlyPrice > *summary.MaxPrice {
			summary.MaxPrice = utils.Ptr(unit.MonthlyPrice)
		}
	}

	summary.PriceRange = FormatPriceRange(summary.MinPrice, summary.MaxPrice)
	summary.HasAvailableUnits = summary.AvailableCount > 0
	if summary.HasAvailableUnits {
		summary.UnitsLink = "/property/" + strconv.Itoa(property.ID)
	}

	return summary
}

// SortSummaries orders summaries by descending desirability:
// more available units first, then the cheaper entry price, then the
// property name. Properties without any available unit sort after every
// property that has one. The sort is stable, so equal inputs always produce
// the same output.
func SortSummaries(summaries []PropertySummary) []PropertySummary {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]

		if a.AvailableCount != b.AvailableCount {
			return a.AvailableCount > b.AvailableCount
		}

		aMin, bMin := math.Inf(1), math.Inf(1)
		if a.MinPrice != nil {
			aMin = *a.MinPrice
		}
		if b.MinPrice != nil {
			bMin = *b.MinPrice
		}
		if aMin != bMin {
			return aMin < bMin
		}

		return strings.Compare(a.Name, b.Name) < 0
	})

	return summaries
}

// FormatPriceRange renders "£650" for a single price and "£650 - £900" for a
// real range. An unknown minimum (no available units) renders empty.
func FormatPriceRange(minPrice, maxPrice *float64) string {
	if minPrice == nil {
		return ""
	}
	if maxPrice == nil || *maxPrice == *minPrice {
		return formatPrice(*minPrice)
	}
	return formatPrice(*minPrice) + " - " + formatPrice(*maxPrice)
}

func formatPrice(price float64) string {
	return "£" + strconv.FormatFloat(price, 'f', -1, 64)
}
