// SPDX-License-Identifier: EPL-2.0

package mediasim

import (
	"fmt"
	"io"
	"time"

	"github.com/ik5/mediasim/audio"
	"github.com/ik5/mediasim/codec"
	"github.com/ik5/mediasim/media"
	"github.com/ik5/mediasim/report"
)

// Default simulation parameters. These match the reference configuration:
// ten 100ms processing cycles over a 1024-sample buffer for a 180-second
// 320 kbps MP3 resource.
const (
	DefaultCycles     = 10
	DefaultBufferSize = 1024
	DefaultSampleRate = 44100
	DefaultFrameRate  = 30 // video side, informational only
)

// Config holds the simulation parameters. All values are fixed before the
// run starts; nothing reads flags, files or the environment.
type Config struct {
	// Cycles is the number of simulated processing cycles.
	Cycles int
	// BufferSize is the synthetic audio buffer length in samples.
	BufferSize int
	// SampleRate is the nominal sampling frequency in Hz. It is carried
	// on the buffer format and shown in the report; the generator itself
	// is index-based.
	SampleRate int
	// FrameRate is the nominal video frame rate. Informational only.
	FrameRate int
	// Delay is the simulated per-cycle codec processing delay.
	Delay time.Duration

	// The simulated media resource.
	ResourceName string
	Format       string
	Duration     float64
	BitRate      int

	// Clock drives the cycle timing. Nil means the real wall clock;
	// tests inject a deterministic clock here.
	Clock codec.Clock
}

// DefaultConfig returns the reference simulation configuration.
func DefaultConfig() Config {
	return Config{
		Cycles:       DefaultCycles,
		BufferSize:   DefaultBufferSize,
		SampleRate:   DefaultSampleRate,
		FrameRate:    DefaultFrameRate,
		Delay:        codec.DefaultDelay,
		ResourceName: "professional_audio_sample.mp3",
		Format:       "MP3",
		Duration:     180.0,
		BitRate:      320,
	}
}

// Run executes the full simulation, writing the report to w.
//
// The metadata builder and buffer generator run once; the cycle simulator
// then runs cfg.Cycles times, feeding the progress reporter and the two
// index-aligned measurement series; finally the summary reporter consumes
// both series together with the buffer statistics.
func Run(w io.Writer, cfg Config) error {
	if cfg.Cycles <= 0 {
		return ErrInvalidCycleCount
	}

	rep := report.NewReporter(w)
	rep.Banner()

	meta := media.New(cfg.ResourceName, cfg.Format, cfg.Duration, cfg.BitRate)
	rep.ResourceInfo(meta)

	buf, err := audio.Generate(cfg.BufferSize, cfg.SampleRate)
	if err != nil {
		return fmt.Errorf("generating audio buffer: %w", err)
	}
	rep.BufferInfo(cfg.BufferSize, float64(cfg.SampleRate))

	clock := cfg.Clock
	var sim *codec.Simulator
	if clock == nil {
		sim = codec.NewSimulator(cfg.Delay)
	} else {
		sim = codec.NewSimulatorClock(cfg.Delay, clock)
	}

	rep.SimulationStart()

	processingTimes := make([]float64, 0, cfg.Cycles)
	efficiencies := make([]float64, 0, cfg.Cycles)

	for cycle := 1; cycle <= cfg.Cycles; cycle++ {
		processingTime := sim.Process(cycle)

		efficiency, err := codec.Efficiency(processingTime, meta.BitRate)
		if err != nil {
			return fmt.Errorf("cycle %d: %w", cycle, err)
		}

		processingTimes = append(processingTimes, processingTime)
		efficiencies = append(efficiencies, efficiency)

		rep.Progress(cycle, cfg.Cycles, processingTime, efficiency)
	}

	if err := rep.Analytics(processingTimes, efficiencies, buf); err != nil {
		return fmt.Errorf("generating analytics: %w", err)
	}

	rep.Done()
	return nil
}
