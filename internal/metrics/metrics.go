// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package metrics

import (
	// stdlib
	"bufio"
	"bytes"
	"encoding/json"
	"maps"
	"sync"
)

// MetricEntry summarises one run of the scrubbing job.
type MetricEntry struct {
	Timestamp         int64            `json:"timestamp"`
	RuntimeSeconds    float64          `json:"runtime_seconds"`
	DocumentsScrubbed int64            `json:"documents_scrubbed"`
	FilthCounts       map[string]int64 `json:"filth_counts"`
}

// FromBytes parses JSON lines of metric entries.
func FromBytes(data []byte) ([]MetricEntry, error) {
	var metrics []MetricEntry
	reader := bufio.NewScanner(bytes.NewReader(data))
	for reader.Scan() {
		currLine := reader.Bytes()
		if len(currLine) == 0 {
			continue
		}
		var metric MetricEntry
		if err := json.Unmarshal(currLine, &metric); err != nil {
			return nil, err
		}
		metrics = append(metrics, metric)
	}
	return metrics, reader.Err()
}

// ToBytes returns the entry as a JSON line.
func (m MetricEntry) ToBytes() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Counter accumulates the documents and filth of a run.
// Counter is thread safe.
type Counter struct {
	mu        sync.Mutex
	documents int64
	filth     map[string]int64
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{filth: make(map[string]int64)}
}

// AddDocument records a scrubbed document and the filth found in it by type.
func (c *Counter) AddDocument(filthCounts map[string]int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.documents++
	for filthType, count := range filthCounts {
		c.filth[filthType] += count
	}
}

// Entry returns the metric entry of the run so far.
func (c *Counter) Entry(timestamp int64, runtimeSeconds float64) MetricEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MetricEntry{
		Timestamp:         timestamp,
		RuntimeSeconds:    runtimeSeconds,
		DocumentsScrubbed: c.documents,
		FilthCounts:       maps.Clone(c.filth),
	}
}
