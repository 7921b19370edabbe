package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mamadbah2/abanico/internal/domain/models"
)

func sampleRecord() models.ProjectionRecord {
	return models.ProjectionRecord{
		ID: "7b0c6f4e-2f0a-4c55-9d55-0d2b1f0f8a11",
		Input: models.ProjectionInput{
			BaseInvestment:   10000,
			ProjectionMonths: 12,
		},
		Result: models.ProjectionResult{
			BaseResults: models.BaseResults{ROI: 236, PaybackPeriod: 6},
			Summary:     models.ProjectionSummary{Recommendation: models.HighlyRecommended},
		},
		CalculatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func toDocument(t *testing.T, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("save projection", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := NewWithCollection(mt.Coll, nil).SaveProjection(context.Background(), sampleRecord())
		assert.NoError(mt, err)
	})

	mt.Run("save duplicate id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := NewWithCollection(mt.Coll, nil).SaveProjection(context.Background(), sampleRecord())
		assert.ErrorContains(mt, err, "duplicate key")
	})

	mt.Run("find projection", func(mt *mtest.T) {
		want := sampleRecord()
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, toDocument(t, want)))

		got, err := NewWithCollection(mt.Coll, nil).FindProjection(context.Background(), want.ID)
		require.NoError(mt, err)
		assert.Equal(mt, want.ID, got.ID)
		assert.Equal(mt, 10000.0, got.Input.BaseInvestment)
		assert.Equal(mt, 6, got.Result.BaseResults.PaybackPeriod)
		assert.Equal(mt, models.HighlyRecommended, got.Result.Summary.Recommendation)
		assert.True(mt, want.CalculatedAt.Equal(got.CalculatedAt))
	})

	mt.Run("find missing projection", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewWithCollection(mt.Coll, nil).FindProjection(context.Background(), "missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
