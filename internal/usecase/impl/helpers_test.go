package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"citycard/internal/domain/repository"
	"citycard/internal/domain/synthetic"
	mockRepo "citycard/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// scriptedSource replays fixed draws.
type scriptedSource struct {
	floats []float64
	ints   []int
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]

	return v
}

func (s *scriptedSource) IntN(int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]

	return v
}

func newScriptedGenerator(floats []float64, ints []int) *synthetic.Generator {
	return synthetic.New(&scriptedSource{floats: floats, ints: ints}, synthetic.WithClock(func() time.Time {
		return time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
	}))
}

// expectUnitOfWork makes txManager run the callback once against factory and return its error.
func expectUnitOfWork(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

func int64Ptr(v int64) *int64 {
	return &v
}

func newTxMocks(t *testing.T) (*mockRepo.MockTransactionManager, *mockRepo.MockRepositoryFactory) {
	return mockRepo.NewMockTransactionManager(t), mockRepo.NewMockRepositoryFactory(t)
}
