package gql_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gqlmemo/internal/adapters/gql"
	"go.trai.ch/gqlmemo/internal/core/domain"
)

const tripQuery = "{ trip { tripPatterns { duration } } }"

func TestParser_Parse_TripQuery(t *testing.T) {
	t.Parallel()

	doc, err := gql.NewParser().Parse(tripQuery)
	require.NoError(t, err)
	require.False(t, doc.IsZero())
	assert.Equal(t, domain.QueryText(tripQuery), doc.Text())

	ops := doc.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, domain.OperationQuery, ops[0].Kind())
	assert.Empty(t, ops[0].Name())

	top := ops[0].Selections()
	require.Len(t, top, 1)
	assert.Equal(t, "trip", top[0].Name())

	nested := top[0].Selections()
	require.Len(t, nested, 1)
	assert.Equal(t, "tripPatterns", nested[0].Name())

	leaf := nested[0].Selections()
	require.Len(t, leaf, 1)
	assert.Equal(t, "duration", leaf[0].Name())
	assert.Equal(t, domain.SelectionField, leaf[0].Kind())
	assert.Empty(t, leaf[0].Selections())
}

func TestParser_Parse_OperationsAndFragments(t *testing.T) {
	t.Parallel()

	const query = `
query Plan($from: String!, $to: String!) {
  plan(from: $from, to: $to) {
    legs: itineraries { ...Leg }
    ... on Itinerary { walkTime }
  }
}

mutation Save { save(id: 1) }

fragment Leg on Itinerary { duration startTime }
`

	doc, err := gql.NewParser().Parse(query)
	require.NoError(t, err)

	require.Len(t, doc.Operations(), 2)

	plan, ok := doc.Operation("Plan")
	require.True(t, ok)
	assert.Equal(t, domain.OperationQuery, plan.Kind())
	assert.Equal(t, []string{"from", "to"}, plan.VariableNames())

	save, ok := doc.Operation("Save")
	require.True(t, ok)
	assert.Equal(t, domain.OperationMutation, save.Kind())

	_, ok = doc.Operation("Missing")
	assert.False(t, ok)

	sels := plan.Selections()[0].Selections()
	require.Len(t, sels, 2)
	assert.Equal(t, "itineraries", sels[0].Name())
	assert.Equal(t, "legs", sels[0].Alias())
	assert.Equal(t, domain.SelectionFragmentSpread, sels[0].Selections()[0].Kind())
	assert.Equal(t, "Leg", sels[0].Selections()[0].Name())
	assert.Equal(t, domain.SelectionInlineFragment, sels[1].Kind())
	assert.Equal(t, "Itinerary", sels[1].TypeCondition())

	frag, ok := doc.Fragment("Leg")
	require.True(t, ok)
	assert.Equal(t, "Itinerary", frag.TypeCondition())
	require.Len(t, frag.Selections(), 2)
	assert.Len(t, doc.Fragments(), 1)
}

func TestParser_Parse_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := gql.NewParser().Parse("{ trip { tripPatterns ")
	require.Error(t, err)

	pe, ok := domain.AsParseError(err)
	require.True(t, ok, "expected *domain.ParseError, got %T", err)
	assert.Equal(t, 1, pe.Line)
	assert.Positive(t, pe.Column)
	assert.NotEmpty(t, pe.Message)
	assert.NotNil(t, pe.Err)
	assert.True(t, errors.Is(err, domain.ErrInvalidQuery))
	assert.Contains(t, err.Error(), "parse error at line 1")
}

func TestParser_Parse_Deterministic(t *testing.T) {
	t.Parallel()

	p := gql.NewParser()

	first, err := p.Parse(tripQuery)
	require.NoError(t, err)
	second, err := p.Parse(tripQuery)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Format(), second.Format())
}

func TestParser_Parse_ErrorDoesNotAffectLaterCalls(t *testing.T) {
	t.Parallel()

	p := gql.NewParser()

	_, err := p.Parse("query {")
	require.Error(t, err)

	doc, err := p.Parse(tripQuery)
	require.NoError(t, err)
	assert.Len(t, doc.Operations(), 1)
}

func TestParser_Parse_Concurrent(t *testing.T) {
	t.Parallel()

	p := gql.NewParser()
	want, err := p.Parse(tripQuery)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			got, err := p.Parse(tripQuery)
			assert.NoError(t, err)
			assert.True(t, want.Equal(got))
		})
	}
	wg.Wait()
}
