package ai

// MaxFramesPerRequest caps how many frames are sent to the model per job.
const MaxFramesPerRequest = 20

// SampleFrames selects at most max frames at a uniform stride across the full
// sequence, preserving temporal order. With max or fewer frames the input is
// returned as-is.
func SampleFrames(frames [][]byte, max int) [][]byte {
	if max <= 0 || len(frames) <= max {
		return frames
	}
	out := make([][]byte, 0, max)
	stride := float64(len(frames)) / float64(max)
	for i := 0; i < max; i++ {
		out = append(out, frames[int(float64(i)*stride)])
	}
	return out
}
