package hicp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hicptools/hicp-go/pkg/hicp/models"
)

// CategoryRange maps a half-open sheet-index interval [Lo, Hi) to a main
// category.
type CategoryRange struct {
	Lo       int
	Hi       int
	Category models.Category
}

// DefaultRanges returns the sheet-index intervals of the detailed workbook's
// main COICOP categories.
func DefaultRanges() []CategoryRange {
	return []CategoryRange{
		{Lo: 1, Hi: 76, Category: models.CategoryFood},
		{Lo: 76, Hi: 109, Category: models.CategoryHousingEnergy},
		{Lo: 109, Hi: 151, Category: models.CategoryTransport},
	}
}

// Classifier maps sheet names to main categories by the numeric index in
// the sheet name's trailing token.
type Classifier struct {
	ranges []CategoryRange
}

// NewClassifier builds a classifier from the given ranges. Ranges must be
// well-formed (Lo < Hi) and mutually non-overlapping.
func NewClassifier(ranges []CategoryRange) (*Classifier, error) {
	for i, r := range ranges {
		if r.Lo >= r.Hi {
			return nil, fmt.Errorf("category range %d (%s): lo %d is not below hi %d", i, r.Category, r.Lo, r.Hi)
		}
		for j := i + 1; j < len(ranges); j++ {
			o := ranges[j]
			if r.Lo < o.Hi && o.Lo < r.Hi {
				return nil, fmt.Errorf("category ranges overlap: [%d,%d) %s and [%d,%d) %s",
					r.Lo, r.Hi, r.Category, o.Lo, o.Hi, o.Category)
			}
		}
	}
	return &Classifier{ranges: ranges}, nil
}

// DefaultClassifier returns a classifier over DefaultRanges.
func DefaultClassifier() *Classifier {
	// The default ranges are non-overlapping by construction.
	return &Classifier{ranges: DefaultRanges()}
}

// Classify maps a sheet name like "Sheet 23" to a category by its trailing
// integer index. Names without a parseable trailing index, and indices
// outside every range, classify as Other. Classification is total: every
// input maps to exactly one category.
func (c *Classifier) Classify(sheetName string) models.Category {
	fields := strings.Fields(sheetName)
	if len(fields) == 0 {
		return models.CategoryOther
	}
	idx, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return models.CategoryOther
	}
	for _, r := range c.ranges {
		if idx >= r.Lo && idx < r.Hi {
			return r.Category
		}
	}
	return models.CategoryOther
}
