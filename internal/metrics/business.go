package metrics

// IncrementBoardCreated increments the board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardsCreatedTotal.Inc()
	})
}

// IncrementTaskCreated increments the task creation counter
func (m *Metrics) IncrementTaskCreated() {
	m.safeExecute("IncrementTaskCreated", func() {
		m.TasksCreatedTotal.Inc()
	})
}

// IncrementEventPublished increments the published-event counter per event name
func (m *Metrics) IncrementEventPublished(event string) {
	m.safeExecute("IncrementEventPublished", func() {
		m.EventsPublishedTotal.WithLabelValues(event).Inc()
	})
}

// IncrementEventDropped increments the dropped-event counter
func (m *Metrics) IncrementEventDropped() {
	m.safeExecute("IncrementEventDropped", func() {
		m.EventsDroppedTotal.Inc()
	})
}

// WSConnectionOpened adjusts the websocket connection gauge up
func (m *Metrics) WSConnectionOpened() {
	m.safeExecute("WSConnectionOpened", func() {
		m.WSConnections.Inc()
	})
}

// WSConnectionClosed adjusts the websocket connection gauge down
func (m *Metrics) WSConnectionClosed() {
	m.safeExecute("WSConnectionClosed", func() {
		m.WSConnections.Dec()
	})
}

// SetRoomsActive sets the active-room gauge
func (m *Metrics) SetRoomsActive(count int) {
	m.safeExecute("SetRoomsActive", func() {
		m.RoomsActive.Set(float64(count))
	})
}
