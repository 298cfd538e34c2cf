package report

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// valueSeed fixes the pseudo-random stream. Reseeding per call keeps
// /run responses reproducible across requests and restarts.
const valueSeed = 42

// Row is one simulated report line. Field names and order follow the
// dataset export this sandbox stands in for.
type Row struct {
	Country    string `json:"COUNTRY"`
	Line       int    `json:"LINE"`
	ReportDate string `json:"REPORT_DATE"`
	PrevDate   string `json:"PREV_DATE"`
	Value      Value  `json:"VALUE"`
	PrevValue  Value  `json:"PREV_VALUE"`
	Delta      Value  `json:"DELTA"`
}

// Generator produces deterministic mock report rows.
type Generator struct {
	seed int64
}

// NewGenerator creates a generator with the fixed seed.
func NewGenerator() *Generator {
	return &Generator{seed: valueSeed}
}

// Generate builds one row per requested line number, in request order.
// A fresh source is seeded on every call, so identical parameters
// always yield byte-identical rows.
func (g *Generator) Generate(p Params) []Row {
	rng := rand.New(rand.NewSource(g.seed))

	reportDate := FormatDate(p.ReportDate)
	var prevDate string
	if p.HasPrev() {
		prevDate = FormatDate(p.PrevDate)
	}

	rows := make([]Row, 0, len(p.Lines))
	for _, line := range p.Lines {
		base := 1000 + rng.Float64()*4000
		value := decimal.NewFromFloat(base * (1 + float64(line)/100)).Round(2)

		row := Row{
			Country:    p.Country,
			Line:       line,
			ReportDate: reportDate,
			PrevDate:   prevDate,
			Value:      NewValue(value),
		}

		if p.HasPrev() {
			factor := 0.9 + rng.Float64()*0.2
			prev := value.Mul(decimal.NewFromFloat(factor)).Round(2)
			row.PrevValue = NewValue(prev)
			if !prev.IsZero() {
				row.Delta = NewValue(value.Sub(prev))
			}
		}

		rows = append(rows, row)
	}

	return rows
}
