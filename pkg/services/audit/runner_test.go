package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/de-tools/tag-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSource struct{ mock.Mock }

func (m *mockSource) Authenticate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockSource) ListResources(ctx context.Context, scope string) ([]domain.ResourceRecord, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResourceRecord), args.Error(1)
}

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()
	required := domain.DefaultRequiredTags()

	t.Run("authentication failure", func(t *testing.T) {
		src := new(mockSource)
		src.On("Authenticate", mock.Anything).Return(fmt.Errorf("no credentials"))

		results, err := NewRunner(src, required).Run(ctx, "")

		assert.Nil(t, results)
		assert.True(t, errors.Is(err, ErrAuthentication))
		src.AssertNotCalled(t, "ListResources", mock.Anything, mock.Anything)
	})

	t.Run("retrieval failure", func(t *testing.T) {
		src := new(mockSource)
		src.On("Authenticate", mock.Anything).Return(nil)
		src.On("ListResources", mock.Anything, "").Return(nil, fmt.Errorf("throttled"))

		results, err := NewRunner(src, required).Run(ctx, "")

		assert.Nil(t, results)
		assert.True(t, errors.Is(err, ErrRetrieval))
		src.AssertNumberOfCalls(t, "ListResources", 1)
	})

	t.Run("empty scope", func(t *testing.T) {
		src := new(mockSource)
		src.On("Authenticate", mock.Anything).Return(nil)
		src.On("ListResources", mock.Anything, "rg-empty").Return([]domain.ResourceRecord{}, nil)

		results, err := NewRunner(src, required).Run(ctx, "rg-empty")

		assert.NoError(t, err)
		assert.Empty(t, results)
		src.AssertExpectations(t)
	})

	t.Run("results keep source order", func(t *testing.T) {
		records := []domain.ResourceRecord{
			{Name: "b", ID: "/subscriptions/s/resourceGroups/rg1/providers/p/t/b"},
			{Name: "a", ID: "/subscriptions/s/resourceGroups/rg2/providers/p/t/a",
				Tags: map[string]string{"environment": "prod", "owner": "ops", "project": "x"}},
			{Name: "b", ID: "/subscriptions/s/resourceGroups/rg1/providers/p/t/b"},
		}
		src := new(mockSource)
		src.On("Authenticate", mock.Anything).Return(nil)
		src.On("ListResources", mock.Anything, "").Return(records, nil)

		results, err := NewRunner(src, required).Run(ctx, "")

		assert.NoError(t, err)
		assert.Len(t, results, 3)
		// no re-sorting, no de-duplication
		assert.Equal(t, "b", results[0].ResourceName)
		assert.Equal(t, "a", results[1].ResourceName)
		assert.Equal(t, "b", results[2].ResourceName)
		assert.True(t, results[1].Compliant)
		assert.False(t, results[0].Compliant)
	})

	t.Run("defaults required tags when none given", func(t *testing.T) {
		src := new(mockSource)
		runner := NewRunner(src, nil)

		assert.Equal(t, domain.DefaultRequiredTags(), runner.RequiredTags())
	})
}
