package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspmatch/instruction"
)

func TestNew_ConstructsAllInstruments(t *testing.T) {
	m, err := New(context.Background(), 0, "test-run")
	require.NoError(t, err)
	require.NotNil(t, m)
	defer m.Shutdown(context.Background())

	// Recording on every instrument must not panic.
	m.RecordSuperstep(context.Background(), "phase1")
	m.RecordSent(context.Background(), instruction.Move)
	m.RecordReceived(context.Background(), instruction.Confirm)
	m.RecordMatchingSize(context.Background(), 4)
	m.RecordQuiescence(context.Background(), "phase1", 7)
}

func TestNilMeter_EveryMethodIsANoop(t *testing.T) {
	var m *Meter
	require.NotPanics(t, func() {
		m.RecordSuperstep(context.Background(), "phase1")
		m.RecordSent(context.Background(), instruction.Move)
		m.RecordReceived(context.Background(), instruction.Confirm)
		m.RecordMatchingSize(context.Background(), 0)
		m.RecordQuiescence(context.Background(), "phase2", 0)
		require.NoError(t, m.Shutdown(context.Background()))
	})
}
