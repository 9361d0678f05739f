package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/refdoc"
	"github.com/fwojciec/refdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where DatasetWriter is expected
	var _ refdoc.DatasetWriter = &mock.DatasetWriter{}
}

func TestDatasetWriter_WriteDataset(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteDatasetFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *refdoc.Dataset
		w := &mock.DatasetWriter{
			WriteDatasetFn: func(_ context.Context, ds *refdoc.Dataset) error {
				calledWith = ds
				return nil
			},
		}

		ds := refdoc.NewDataset()
		ds.Set("Robot", refdoc.NewPageRecord("Robot"))

		err := w.WriteDataset(context.Background(), ds)

		require.NoError(t, err)
		assert.Equal(t, ds, calledWith)
	})
}
