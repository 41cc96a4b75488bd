package resources

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(rs []Resource) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	d := NewDirectory(nil)
	got, err := d.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, got, 7)
}

func TestSearch_Fields(t *testing.T) {
	d := NewDirectory(nil)
	ctx := context.Background()

	tests := []struct {
		query string
		want  []string
	}{
		{"kitwe", []string{"Copperbelt Mental Wellness Center"}},
		{"TRAUMA", []string{"Mindful Zambia"}},
		{"private", []string{"Mindful Zambia"}},
		{"youth", []string{"Youth Alive Zambia"}},
		{"eastern", []string{"Rural Mental Health Initiative"}},
		{"no such provider", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := d.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSearch_DescriptionNotSearched(t *testing.T) {
	got, err := NewDirectory(nil).Search(context.Background(), "largest")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTab(t *testing.T) {
	d := NewDirectory(nil)
	ctx := context.Background()

	hospitals, err := d.Tab(ctx, TabHospital, "")
	require.NoError(t, err)
	assert.Len(t, hospitals, 2)

	ngos, err := d.Tab(ctx, "NGO", "")
	require.NoError(t, err)
	assert.Len(t, ngos, 3)

	other, err := d.Tab(ctx, TabOther, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Copperbelt Mental Wellness Center", "Mindful Zambia"}, names(other))

	lusakaHospitals, err := d.Tab(ctx, TabHospital, "lusaka")
	require.NoError(t, err)
	assert.Len(t, lusakaHospitals, 2)

	all, err := d.Tab(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestTab_Unknown(t *testing.T) {
	_, err := NewDirectory(nil).Tab(context.Background(), "pharmacy", "")
	assert.True(t, errors.Is(err, ErrUnknownTab))
}

type failingSource struct{}

func (failingSource) ListResources(context.Context) ([]Resource, error) {
	return nil, errors.New("boom")
}

func TestSearch_SourceError(t *testing.T) {
	_, err := NewDirectory(failingSource{}).Search(context.Background(), "x")
	assert.ErrorContains(t, err, "boom")
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	a := Catalog()
	a[0].Name = "changed"
	a[0].Services[0] = "changed"

	b := Catalog()
	assert.Equal(t, "Chainama Hills Hospital", b[0].Name)
	assert.Equal(t, "Psychiatric care", b[0].Services[0])
}
