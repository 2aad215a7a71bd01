package speech

import (
	"github.com/dgnsrekt/vocalize/speech/formant"
	"github.com/dgnsrekt/vocalize/speech/prosody"
)

// Streaming chunk size bounds, in samples.
const (
	DefaultChunkSize = 1024
	MinChunkSize     = 64
)

// Chunk is one piece of streamed audio. Progress is cumulative samples
// emitted over total planned samples; it never decreases and reaches
// exactly 1.0 on the final chunk.
type Chunk struct {
	Samples  []int16
	Progress float64
}

// Stream is a pull-based lazy synthesis iterator. It owns the planned
// event list and the engine state; dropping it releases everything.
// The driver keeps at most one rendered event plus one chunk buffered.
type Stream struct {
	events    []prosody.Event
	engine    *formant.Engine
	chunkSize int
	total     int
	emitted   int
	next      int
	buf       []float64
}

func newStream(events []prosody.Event, chunkSize int, seed uint32) *Stream {
	if chunkSize < MinChunkSize {
		chunkSize = MinChunkSize
	}
	return &Stream{
		events:    events,
		engine:    formant.NewEngineWithSeed(seed),
		chunkSize: chunkSize,
		total:     prosody.TotalSamples(events),
	}
}

// TotalSamples returns the planned output length, known before any
// audio is generated.
func (st *Stream) TotalSamples() int {
	return st.total
}

// Next renders and returns the next chunk. It returns ErrStreamDone
// once the stream is exhausted; a plan with no events is exhausted
// immediately.
func (st *Stream) Next() (Chunk, error) {
	for len(st.buf) < st.chunkSize && st.next < len(st.events) {
		st.buf = append(st.buf, st.engine.RenderEvent(st.events, st.next)...)
		st.next++
	}
	if len(st.buf) == 0 {
		return Chunk{}, ErrStreamDone
	}

	take := st.chunkSize
	if take > len(st.buf) {
		take = len(st.buf)
	}
	samples := formant.Quantize(st.buf[:take])
	st.buf = st.buf[take:]
	st.emitted += take

	return Chunk{
		Samples:  samples,
		Progress: float64(st.emitted) / float64(st.total),
	}, nil
}

// Collect drains the stream and concatenates all chunks.
func (st *Stream) Collect() AudioOutput {
	samples := make([]int16, 0, st.total-st.emitted)
	for {
		chunk, err := st.Next()
		if err != nil {
			break
		}
		samples = append(samples, chunk.Samples...)
	}
	return newAudioOutput(samples)
}
