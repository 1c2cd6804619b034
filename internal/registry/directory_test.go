package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticDirectory_Find(t *testing.T) {
	d := NewStaticDirectory()
	ctx := context.Background()

	rec, err := d.Find(ctx, "INA000123456")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Redwood Capital Advisers", rec.Name)
	assert.True(t, rec.Active())

	rec, err = d.Find(ctx, "INA000000000")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStaticDirectory_FindBySuffix(t *testing.T) {
	d := NewStaticDirectory()
	ctx := context.Background()

	rec, err := d.FindBySuffix(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = d.FindBySuffix(ctx, "543210")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Harbor Wealth Management", rec.Name)

	rec, err = d.FindBySuffix(ctx, "999888")
	require.NoError(t, err)
	assert.Nil(t, rec)

	rec, err = d.FindBySuffix(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStaticDirectory_Search(t *testing.T) {
	d := NewStaticDirectory()
	ctx := context.Background()

	tests := []struct {
		name          string
		query         string
		expectedNames []string
	}{
		{
			name:          "by name fragment",
			query:         "redwood",
			expectedNames: []string{"Redwood Capital Advisers"},
		},
		{
			name:          "by entity type",
			query:         "research analyst",
			expectedNames: []string{"Zenith Research LLP", "BlueSky Equity Research"},
		},
		{
			name:          "by identifier",
			query:         "ra000112233",
			expectedNames: []string{"BlueSky Equity Research"},
		},
		{
			name:          "no match",
			query:         "nonexistent",
			expectedNames: nil,
		},
		{
			name:          "blank query",
			query:         "   ",
			expectedNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := d.Search(ctx, tt.query)
			require.NoError(t, err)

			var names []string
			for _, rec := range records {
				names = append(names, rec.Name)
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestRecord_Active(t *testing.T) {
	assert.True(t, Record{Status: "Active"}.Active())
	assert.True(t, Record{Status: "active"}.Active())
	assert.True(t, Record{Status: "ACTIVE"}.Active())
	assert.False(t, Record{Status: "Suspended"}.Active())
	assert.False(t, Record{}.Active())
}
