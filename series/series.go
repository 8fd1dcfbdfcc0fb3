// Package series loads and stores price/demand/supply series as CSV.
package series

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rustyeddy/zones/zones"
)

// Series is a price series with its demand and supply curves.
type Series struct {
	Price  []float64
	Demand []float64
	Supply []float64
}

func (s Series) Len() int { return len(s.Price) }

func (s Series) Validate() error {
	return zones.Validate(s.Price, s.Demand, s.Supply)
}

// Curves is a demand/supply pair without prices.
type Curves struct {
	Demand []float64
	Supply []float64
}

func (c Curves) Validate() error {
	return zones.ValidateCurves(c.Demand, c.Supply)
}

type row struct {
	Price  float64 `csv:"price"`
	Demand float64 `csv:"demand"`
	Supply float64 `csv:"supply"`
}

type curveRow struct {
	Demand float64 `csv:"demand"`
	Supply float64 `csv:"supply"`
}

var (
	seriesHeader = []string{"price", "demand", "supply"}
	curvesHeader = []string{"demand", "supply"}
)

// readRows decodes path into rows after checking that its header is
// exactly want. An empty file, a different header or an unparsable value
// is invalid input.
func readRows(path string, want []string, rows interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty series", zones.ErrInvalidInput)
	}

	got, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return fmt.Errorf("%w: read header of %s: %v", zones.ErrInvalidInput, path, err)
	}
	if !slices.Equal(got, want) {
		return fmt.Errorf("%w: %s has header %q, want %q",
			zones.ErrInvalidInput, path, strings.Join(got, ","), strings.Join(want, ","))
	}

	if err := gocsv.UnmarshalBytes(data, rows); err != nil {
		return fmt.Errorf("%w: parse %s: %v", zones.ErrInvalidInput, path, err)
	}
	return nil
}

// LoadCSV reads a file with a price,demand,supply header.
func LoadCSV(path string) (Series, error) {
	var rows []*row
	if err := readRows(path, seriesHeader, &rows); err != nil {
		return Series{}, err
	}

	s := Series{
		Price:  make([]float64, 0, len(rows)),
		Demand: make([]float64, 0, len(rows)),
		Supply: make([]float64, 0, len(rows)),
	}
	for _, r := range rows {
		s.Price = append(s.Price, r.Price)
		s.Demand = append(s.Demand, r.Demand)
		s.Supply = append(s.Supply, r.Supply)
	}
	return s, s.Validate()
}

// WriteCSV writes s in the format read by LoadCSV.
func WriteCSV(path string, s Series) error {
	if err := s.Validate(); err != nil {
		return err
	}

	rows := make([]*row, s.Len())
	for i := range s.Price {
		rows[i] = &row{Price: s.Price[i], Demand: s.Demand[i], Supply: s.Supply[i]}
	}
	return writeFile(path, &rows)
}

// LoadCurvesCSV reads a file with a demand,supply header.
func LoadCurvesCSV(path string) (Curves, error) {
	var rows []*curveRow
	if err := readRows(path, curvesHeader, &rows); err != nil {
		return Curves{}, err
	}

	c := Curves{
		Demand: make([]float64, 0, len(rows)),
		Supply: make([]float64, 0, len(rows)),
	}
	for _, r := range rows {
		c.Demand = append(c.Demand, r.Demand)
		c.Supply = append(c.Supply, r.Supply)
	}
	return c, c.Validate()
}

// WriteCurvesCSV writes c in the format read by LoadCurvesCSV.
func WriteCurvesCSV(path string, c Curves) error {
	if err := c.Validate(); err != nil {
		return err
	}

	rows := make([]*curveRow, len(c.Demand))
	for i := range c.Demand {
		rows[i] = &curveRow{Demand: c.Demand[i], Supply: c.Supply[i]}
	}
	return writeFile(path, &rows)
}

func writeFile(path string, rows interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalFile(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
