package registry

import (
	"context"
	"strings"
)

// StaticDirectory is an in-memory Directory used when no database is
// configured. The fixture set mirrors the public sample registry.
type StaticDirectory struct {
	records []Record
}

// NewStaticDirectory returns a directory over the built-in fixture records
func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{records: fixtureRecords()}
}

// NewStaticDirectoryWith returns a directory over the given records
func NewStaticDirectoryWith(records []Record) *StaticDirectory {
	return &StaticDirectory{records: records}
}

func fixtureRecords() []Record {
	return []Record{
		{RegNo: "INA000123456", Name: "Redwood Capital Advisers", EntityType: "Investment Adviser", Status: "Active"},
		{RegNo: "RA000987654", Name: "Zenith Research LLP", EntityType: "Research Analyst", Status: "Suspended"},
		{RegNo: "INA000543210", Name: "Harbor Wealth Management", EntityType: "Investment Adviser", Status: "Active"},
		{RegNo: "RA000112233", Name: "BlueSky Equity Research", EntityType: "Research Analyst", Status: "Active"},
		{RegNo: "INA000999999", Name: "Suspicious Advisor Ltd", EntityType: "Investment Adviser", Status: "Suspended"},
	}
}

func (d *StaticDirectory) Find(ctx context.Context, id string) (*Record, error) {
	for _, rec := range d.records {
		if NormalizeRegNo(rec.RegNo) == id {
			r := rec
			return &r, nil
		}
	}
	return nil, nil
}

func (d *StaticDirectory) FindBySuffix(ctx context.Context, suffix string) (*Record, error) {
	if suffix == "" {
		return nil, nil
	}
	for _, rec := range d.records {
		if strings.HasSuffix(NormalizeRegNo(rec.RegNo), suffix) {
			r := rec
			return &r, nil
		}
	}
	return nil, nil
}

func (d *StaticDirectory) Search(ctx context.Context, query string) ([]Record, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	var out []Record
	for _, rec := range d.records {
		if strings.Contains(strings.ToLower(rec.Name), q) ||
			strings.Contains(strings.ToLower(rec.RegNo), q) ||
			strings.Contains(strings.ToLower(rec.EntityType), q) {
			out = append(out, rec)
		}
	}
	return out, nil
}
