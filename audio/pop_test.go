package audio

import (
	"math"
	"testing"
)

func TestPopBufferShape(t *testing.T) {
	buf := popBuffer()
	if len(buf) == 0 {
		t.Fatal("Expected non-empty pop buffer")
	}
	for i, v := range buf {
		if math.Abs(v) > 1.0 {
			t.Fatalf("Sample %d clips: %v", i, v)
		}
	}
	// Envelope silences both ends
	if buf[0] != 0 {
		t.Errorf("Expected silent attack start, got %v", buf[0])
	}
	if math.Abs(buf[len(buf)-1]) > 0.01 {
		t.Errorf("Expected near-silent release tail, got %v", buf[len(buf)-1])
	}
}

func TestMutedPopperIsNoOp(t *testing.T) {
	p := NewMutedPopper()
	// Must not panic without an initialized speaker
	p.Pop()
}

func TestBufferStreamerDrains(t *testing.T) {
	s := &bufferStreamer{buf: []float64{0.1, 0.2, 0.3}}
	samples := make([][2]float64, 2)

	n, ok := s.Stream(samples)
	if n != 2 || !ok {
		t.Fatalf("Expected 2 samples streamed, got %d ok=%v", n, ok)
	}
	if samples[0][0] != 0.1 || samples[0][1] != 0.1 {
		t.Errorf("Expected mono duplication, got %v", samples[0])
	}
	n, ok = s.Stream(samples)
	if n != 1 || !ok {
		t.Fatalf("Expected final sample, got %d ok=%v", n, ok)
	}
	n, ok = s.Stream(samples)
	if n != 0 || ok {
		t.Errorf("Expected drained streamer, got %d ok=%v", n, ok)
	}
}
