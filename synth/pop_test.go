package synth

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	cfg "github.com/pmattheis/balloonfield/config"
)

func TestRenderPopLength(t *testing.T) {
	buf := RenderPop(rand.New(rand.NewSource(1)))

	wantFrames := int(float64(cfg.Audio.SampleRate) * cfg.Audio.PopDuration)
	if len(buf) != wantFrames*bytesPerFrame {
		t.Fatalf("Expected %d bytes, got %d", wantFrames*bytesPerFrame, len(buf))
	}
}

func TestRenderPopDeterministic(t *testing.T) {
	a := RenderPop(rand.New(rand.NewSource(42)))
	b := RenderPop(rand.New(rand.NewSource(42)))

	if !bytes.Equal(a, b) {
		t.Error("Same seed should produce identical PCM")
	}

	c := RenderPop(rand.New(rand.NewSource(43)))
	if bytes.Equal(a, c) {
		t.Error("Different seeds should change the noise layer")
	}
}

func TestRenderPopEnvelopeDecays(t *testing.T) {
	buf := RenderPop(rand.New(rand.NewSource(7)))

	frames := len(buf) / bytesPerFrame
	window := frames / 10

	head := rmsWindow(buf, 0, window)
	tail := rmsWindow(buf, frames-window, frames)

	if head == 0 {
		t.Fatal("Expected nonzero signal at the start of the pop")
	}
	if tail >= head*0.5 {
		t.Errorf("Expected decaying envelope: head rms %f, tail rms %f", head, tail)
	}
}

func TestRenderPopChannelsMatch(t *testing.T) {
	buf := RenderPop(rand.New(rand.NewSource(3)))

	for i := 0; i < len(buf); i += bytesPerFrame {
		left := int16(binary.LittleEndian.Uint16(buf[i:]))
		right := int16(binary.LittleEndian.Uint16(buf[i+2:]))
		if left != right {
			t.Fatalf("Frame %d: left %d != right %d", i/bytesPerFrame, left, right)
		}
	}
}

func rmsWindow(buf []byte, from, to int) float64 {
	var sum float64
	for i := from; i < to; i++ {
		v := float64(int16(binary.LittleEndian.Uint16(buf[i*bytesPerFrame:])))
		sum += v * v
	}
	return math.Sqrt(sum / float64(to-from))
}
