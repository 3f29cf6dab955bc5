package ai

import (
	"fmt"
	"testing"
)

func makeFrames(n int) [][]byte {
	frames := make([][]byte, n)
	for i := range frames {
		frames[i] = []byte(fmt.Sprintf("frame-%d", i))
	}
	return frames
}

func TestSampleFramesUnderCap(t *testing.T) {
	frames := makeFrames(7)
	got := SampleFrames(frames, MaxFramesPerRequest)
	if len(got) != 7 {
		t.Fatalf("got %d frames, want all 7", len(got))
	}
	for i := range got {
		if string(got[i]) != string(frames[i]) {
			t.Errorf("frame %d reordered", i)
		}
	}
}

func TestSampleFramesExactCap(t *testing.T) {
	got := SampleFrames(makeFrames(MaxFramesPerRequest), MaxFramesPerRequest)
	if len(got) != MaxFramesPerRequest {
		t.Fatalf("got %d frames, want %d", len(got), MaxFramesPerRequest)
	}
}

func TestSampleFramesOverCap(t *testing.T) {
	frames := makeFrames(100)
	got := SampleFrames(frames, MaxFramesPerRequest)
	if len(got) != MaxFramesPerRequest {
		t.Fatalf("got %d frames, want %d", len(got), MaxFramesPerRequest)
	}
	// Uniform stride over 100 frames picks every fifth frame starting at 0.
	if string(got[0]) != "frame-0" {
		t.Errorf("first sample = %s, want frame-0", got[0])
	}
	if string(got[1]) != "frame-5" {
		t.Errorf("second sample = %s, want frame-5", got[1])
	}
	if string(got[19]) != "frame-95" {
		t.Errorf("last sample = %s, want frame-95", got[19])
	}
}

func TestSampleFramesPreservesOrder(t *testing.T) {
	got := SampleFrames(makeFrames(53), 20)
	prev := -1
	for _, f := range got {
		var idx int
		fmt.Sscanf(string(f), "frame-%d", &idx)
		if idx <= prev {
			t.Fatalf("sampled frames out of order: %d after %d", idx, prev)
		}
		prev = idx
	}
}
