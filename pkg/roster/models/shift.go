package models

// Category is a coarse shift bucket that shift codes normalize into.
type Category string

const (
	Morning   Category = "Morning"
	Afternoon Category = "Afternoon"
	Night     Category = "Night"
	Standby   Category = "Standby"
	OffDay    Category = "Off Day"
	Leave     Category = "Leave"
	Training  Category = "Training"
	Other     Category = "Other"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Morning, Afternoon, Night, Standby, OffDay, Leave, Training, Other}
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category name, accepting "OffDay" as well as "Off Day".
func ParseCategory(s string) (Category, bool) {
	if s == "OffDay" {
		return OffDay, true
	}
	c := Category(s)
	return c, c.Valid()
}

// Entry is one employee's assignment on the extraction date.
type Entry struct {
	// Name is the employee cell text, normalized.
	Name string `json:"name"`
	// Shift is the display label of the mapped shift code.
	Shift string `json:"shift"`
}

// Bucket groups entries by category. Within a category entries keep sheet row order.
type Bucket map[Category][]Entry

// NewBucket returns a Bucket with an empty slice for every category.
func NewBucket() Bucket {
	b := make(Bucket, len(Categories()))
	for _, c := range Categories() {
		b[c] = []Entry{}
	}
	return b
}

// Add appends an entry to category c.
func (b Bucket) Add(c Category, e Entry) {
	b[c] = append(b[c], e)
}

// Total returns the number of entries across all categories.
func (b Bucket) Total() int {
	n := 0
	for _, entries := range b {
		n += len(entries)
	}
	return n
}
