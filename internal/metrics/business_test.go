package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

func TestIncrementBoardCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.BoardsCreatedTotal)

	m.IncrementBoardCreated()

	newValue := getCounterValue(t, m.BoardsCreatedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementTaskCreated(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.TasksCreatedTotal)

	m.IncrementTaskCreated()
	m.IncrementTaskCreated()

	newValue := getCounterValue(t, m.TasksCreatedTotal)
	if newValue != initialValue+2 {
		t.Errorf("Expected counter to increment by 2, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementEventPublishedPerEvent(t *testing.T) {
	m := getTestMetrics()

	m.IncrementEventPublished("task-created")
	m.IncrementEventPublished("task-created")
	m.IncrementEventPublished("board-deleted")

	created := getCounterValue(t, m.EventsPublishedTotal.WithLabelValues("task-created"))
	if created != 2 {
		t.Errorf("Expected task-created counter to be 2, got %f", created)
	}
	deleted := getCounterValue(t, m.EventsPublishedTotal.WithLabelValues("board-deleted"))
	if deleted != 1 {
		t.Errorf("Expected board-deleted counter to be 1, got %f", deleted)
	}
}

func TestWSConnectionGauge(t *testing.T) {
	m := getTestMetrics()

	m.WSConnectionOpened()
	m.WSConnectionOpened()
	m.WSConnectionClosed()

	value := getGaugeValue(t, m.WSConnections)
	if value != 1 {
		t.Errorf("Expected gauge value 1, got %f", value)
	}
}

func TestSetRoomsActive(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int
	}{
		{"no rooms", 0},
		{"one room", 1},
		{"many rooms", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetRoomsActive(tt.count)
			value := getGaugeValue(t, m.RoomsActive)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}
