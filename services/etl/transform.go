package etl

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrParseGDP = errors.New("failed to parse gdp figure")

// MillionsToBillions strips the thousands separators out of `figure` and
// converts it from millions to billions, rounded to 2 decimal places.
//
// ties are broken to even on the binary value of figure/1000*100, so
// "2,125" becomes 2.12 and "2,375" becomes 2.38.
func MillionsToBillions(figure string) (float64, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(figure, ",", ""))
	// ParseFloat also takes hex floats like 0x1p10, which are not figures.
	if strings.ContainsAny(cleaned, "xXpP") {
		return 0, fmt.Errorf("%w: %q", ErrParseGDP, figure)
	}
	millions, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParseGDP, figure)
	}
	if math.IsNaN(millions) || math.IsInf(millions, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrParseGDP, figure)
	}
	return math.RoundToEven(millions/1000*100) / 100, nil
}

// Transform converts the GDP column in place from text in millions to
// numbers in billions and renames it. any unparsable figure fails the whole
// table.
func Transform(ctx context.Context, table *Table) error {
	_, span := tracer.Start(ctx, "Transform")
	defer span.End()

	if table.Transformed() {
		return fmt.Errorf("transform: table is already in %s", ColumnGDPBillions)
	}
	for i := range table.Rows {
		value, err := MillionsToBillions(table.Rows[i].GDPText)
		if err != nil {
			return fmt.Errorf("transform %s: %w", table.Rows[i].Country, err)
		}
		table.Rows[i].GDP = value
	}
	table.Schema.GDP = ColumnGDPBillions

	recordRows(ctx, "transform", len(table.Rows))
	return nil
}
