package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinic/internal/domain"
)

type stubAppointments struct {
	calls atomic.Int64
}

func (s *stubAppointments) CancelStale(ctx context.Context) (int64, error) {
	s.calls.Add(1)
	return 0, nil
}

func (s *stubAppointments) Create(ctx context.Context, patientID int64, dto domain.CreateAppointmentDTO) (int64, error) {
	return 0, nil
}

func (s *stubAppointments) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return nil, domain.ErrNotFound
}

func (s *stubAppointments) Confirm(ctx context.Context, doctorID, id int64) error { return nil }

func (s *stubAppointments) StartExamination(ctx context.Context, doctorID, id int64) error {
	return nil
}

func (s *stubAppointments) Cancel(ctx context.Context, patientID, id int64) error { return nil }

func (s *stubAppointments) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	return nil, 0, nil
}

func TestSweeperRuns(t *testing.T) {
	stub := &stubAppointments{}
	sweeper := NewSweeper(stub, "@every 100ms", zap.NewNop())

	require.NoError(t, sweeper.Start())
	defer sweeper.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for stub.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}

	assert.Greater(t, stub.calls.Load(), int64(0))
}

func TestSweeperRejectsBadSpec(t *testing.T) {
	sweeper := NewSweeper(&stubAppointments{}, "каждый час", zap.NewNop())
	assert.Error(t, sweeper.Start())
}
