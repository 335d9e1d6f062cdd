package queries_test

import (
	"errors"
	"testing"

	"orderfeatures/internal/core/application/usecases/queries"
	"orderfeatures/internal/core/domain/model/features"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTrainingTableQuery_Valid(t *testing.T) {
	query := queries.NewGetTrainingTableQuery(true, false)

	require.NoError(t, query.Validate())
	assert.True(t, query.DeliveredOnly())
	assert.False(t, query.IncludeDistance())
}

func TestGetTrainingTableQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTrainingTableQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTrainingTableQueryIsNotConstructed)
}

func TestGetTrainingTableQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	want := features.TrainingTable{Rows: []features.OrderFeatureRow{{OrderID: "O1"}}, IncludeDistance: true}

	builder := new(MockBuilder)
	builder.On("Build", ctx, false, true).Return(want, nil).Once()

	handler := queries.NewGetTrainingTableQueryHandler(builder)
	got, err := handler.Handle(ctx, queries.NewGetTrainingTableQuery(false, true))

	require.NoError(t, err)
	assert.Equal(t, want, got)
	builder.AssertExpectations(t)
}

func TestGetTrainingTableQueryHandler_Handle_BuildError(t *testing.T) {
	ctx := t.Context()
	builder := new(MockBuilder)
	builder.On("Build", ctx, true, false).Return(features.TrainingTable{}, errors.New("boom")).Once()

	handler := queries.NewGetTrainingTableQueryHandler(builder)
	_, err := handler.Handle(ctx, queries.NewGetTrainingTableQuery(true, false))

	require.EqualError(t, err, "boom")
}

func TestGetTrainingTableQueryHandler_Handle_InvalidQuery(t *testing.T) {
	builder := new(MockBuilder)

	handler := queries.NewGetTrainingTableQueryHandler(builder)
	_, err := handler.Handle(t.Context(), queries.GetTrainingTableQuery{})

	require.ErrorIs(t, err, queries.ErrGetTrainingTableQueryIsNotConstructed)
	builder.AssertNotCalled(t, "Build")
}
