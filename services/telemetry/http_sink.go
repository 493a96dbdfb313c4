package telemetry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// maxBuffered caps the events held between flushes; the oldest are
	// dropped first when the buffer is full.
	maxBuffered = 100

	flushInterval = 30 * time.Second
	sendTimeout   = 5 * time.Second
)

// HTTPSink buffers events and posts them in JSON batches to a log
// endpoint. A flush that fails drops the batch silently: telemetry must
// never loop back into error reporting.
type HTTPSink struct {
	endpoint  string
	client    *http.Client
	logger    *zap.Logger
	sessionID string

	mu     sync.Mutex
	buffer []Event
	stop   chan struct{}
	done   chan struct{}
}

// NewHTTPSink creates a sink posting to the given endpoint and starts its
// background flusher.
func NewHTTPSink(endpoint string, logger *zap.Logger) *HTTPSink {
	s := &HTTPSink{
		endpoint:  endpoint,
		client:    &http.Client{Timeout: sendTimeout},
		logger:    logger,
		sessionID: fmt.Sprintf("session-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *HTTPSink) Report(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.SessionID = s.sessionID

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buffer) >= maxBuffered {
		s.buffer = s.buffer[1:]
	}
	s.buffer = append(s.buffer, event)
}

// Close flushes the remaining events and stops the background flusher.
func (s *HTTPSink) Close() {
	close(s.stop)
	<-s.done
}

func (s *HTTPSink) loop() {
	defer close(s.done)
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.flush()
		case <-s.stop:
			s.flush()
			return
		}
	}
}

func (s *HTTPSink) flush() {
	s.mu.Lock()
	batch := s.buffer
	s.buffer = nil
	s.mu.Unlock()
	if len(batch) == 0 {
		return
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		s.logger.Debug("telemetry batch not serializable", zap.Error(err))
		return
	}
	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		s.logger.Debug("telemetry flush failed", zap.Error(err))
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		s.logger.Debug("telemetry endpoint rejected batch", zap.Int("status", resp.StatusCode))
	}
}
