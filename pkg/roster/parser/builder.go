package parser

import (
	"github.com/ukaji3/roster-go/pkg/roster/models"
)

// Builder turns located sheets into per-category buckets.
type Builder struct {
	classifier *Classifier
	mapper     *Mapper
}

// NewBuilder compiles rules into a Builder.
func NewBuilder(rules Rules) (*Builder, error) {
	c, err := rules.compile()
	if err != nil {
		return nil, err
	}
	return &Builder{
		classifier: &Classifier{rules: c},
		mapper:     &Mapper{rules: c},
	}, nil
}

// Build reads the today column of every employee row below the date row.
// Rows whose name or code cell is unrecognized are skipped. An incomplete
// geometry yields an empty bucket.
func (b *Builder) Build(grid models.Grid, geom models.Geometry) models.Bucket {
	bucket := models.NewBucket()
	if !geom.Complete() {
		return bucket
	}
	for r := geom.DateRow + 1; r <= grid.MaxRow(); r++ {
		name := Normalize(grid.Value(r, geom.EmployeeColumn))
		if !b.classifier.IsEmployeeName(name) {
			continue
		}
		raw := Normalize(grid.Value(r, geom.TodayColumn))
		if !b.classifier.IsShiftCode(raw) {
			continue
		}
		label, category := b.mapper.Map(raw)
		bucket.Add(category, models.Entry{Name: name, Shift: label})
	}
	return bucket
}
