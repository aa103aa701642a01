package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-comments/domain"
)

func TestParseSortDirection(t *testing.T) {
	cases := map[string]domain.SortDirection{
		"asc":        domain.Ascending,
		"ASC":        domain.Ascending,
		"ascending":  domain.Ascending,
		"1":          domain.Ascending,
		"desc":       domain.Descending,
		" Desc ":     domain.Descending,
		"descending": domain.Descending,
		"-1":         domain.Descending,
	}
	for in, want := range cases {
		got, err := domain.ParseSortDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseSortDirection("sideways")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestSortDirectionJSON(t *testing.T) {
	var o domain.Ordering
	require.NoError(t, json.Unmarshal([]byte(`{"column":"vote","order":-1}`), &o))
	assert.Equal(t, domain.Ordering{Column: "vote", Direction: domain.Descending}, o)

	require.NoError(t, json.Unmarshal([]byte(`{"column":"created","order":"asc"}`), &o))
	assert.Equal(t, domain.Ascending, o.Direction)

	assert.Error(t, json.Unmarshal([]byte(`{"column":"created","order":2}`), &o))
	assert.Error(t, json.Unmarshal([]byte(`{"column":"created","order":true}`), &o))

	b, err := json.Marshal(domain.Ordering{Column: "vote", Direction: domain.Descending})
	require.NoError(t, err)
	assert.JSONEq(t, `{"column":"vote","order":"desc"}`, string(b))
}

func TestParseOrdering(t *testing.T) {
	o, err := domain.ParseOrdering("vote:desc")
	require.NoError(t, err)
	assert.Equal(t, domain.Ordering{Column: "vote", Direction: domain.Descending}, o)

	o, err = domain.ParseOrdering("created")
	require.NoError(t, err)
	assert.Equal(t, domain.Ascending, o.Direction)

	_, err = domain.ParseOrdering("created:up")
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestListQuerySkip(t *testing.T) {
	assert.Equal(t, int64(0), domain.ListQuery{Offset: 0, Limit: 10}.Skip())
	assert.Equal(t, int64(20), domain.ListQuery{Offset: 2, Limit: 10}.Skip())
}

func TestListQueryValidate(t *testing.T) {
	valid := domain.ListQuery{
		Offset: 1,
		Limit:  10,
		Order: []domain.Ordering{
			{Column: "vote", Direction: domain.Descending},
			{Column: "created", Direction: domain.Ascending},
		},
	}
	assert.NoError(t, valid.Validate())
	assert.NoError(t, domain.ListQuery{Limit: domain.ListLimitMax}.Validate())
	assert.NoError(t, domain.ListQuery{Offset: math.MaxInt32 / domain.ListLimitMax, Limit: domain.ListLimitMax}.Validate())

	invalid := map[string]domain.ListQuery{
		"zero limit":        {Limit: 0},
		"limit too large":   {Limit: domain.ListLimitMax + 1},
		"negative offset":   {Offset: -1, Limit: 10},
		"offset overflows":  {Offset: 92233720368547759, Limit: domain.ListLimitMax},
		"offset past int32": {Offset: math.MaxInt32/domain.ListLimitMax + 1, Limit: domain.ListLimitMax},
		"unknown column":    {Limit: 10, Order: []domain.Ordering{{Column: "author_id", Direction: domain.Ascending}}},
		"missing direction": {Limit: 10, Order: []domain.Ordering{{Column: "vote"}}},
		"duplicate column": {Limit: 10, Order: []domain.Ordering{
			{Column: "vote", Direction: domain.Ascending},
			{Column: "vote", Direction: domain.Descending},
		}},
	}
	for name, q := range invalid {
		assert.ErrorIs(t, q.Validate(), domain.ErrBadParamInput, name)
	}
}
