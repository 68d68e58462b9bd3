package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/ik5/mediasim/audio"
	"github.com/ik5/mediasim/media"
)

func TestReporter_Progress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cycle      int
		total      int
		timeMS     float64
		efficiency float64
		want       string
	}{
		{
			name:  "halfway",
			cycle: 5, total: 10, timeMS: 100, efficiency: 10,
			want: "\n[Processing Cycle  5/10] [██████████░░░░░░░░░░] 50.0% | Processing Time: 100.00ms | Efficiency: 10.000",
		},
		{
			name:  "first cycle",
			cycle: 1, total: 10, timeMS: 101, efficiency: 9.901,
			want: "\n[Processing Cycle  1/10] [██░░░░░░░░░░░░░░░░░░] 10.0% | Processing Time: 101.00ms | Efficiency: 9.901",
		},
		{
			name:  "complete",
			cycle: 10, total: 10, timeMS: 100, efficiency: 10,
			want: "\n[Processing Cycle 10/10] [████████████████████] 100.0% | Processing Time: 100.00ms | Efficiency: 10.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			NewReporter(&out).Progress(tt.cycle, tt.total, tt.timeMS, tt.efficiency)
			if got := out.String(); got != tt.want {
				t.Errorf("Progress() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReporter_ResourceInfo(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	meta := media.New("professional_audio_sample.mp3", "MP3", 180.0, 320)
	NewReporter(&out).ResourceInfo(meta)

	got := out.String()
	for _, want := range []string{
		"MEDIA RESOURCE CONFIGURATION:",
		"Resource Identifier: professional_audio_sample.mp3",
		"Format Specification: MP3",
		"Duration Parameters: 180.0 seconds",
		"Bit Rate Configuration: 320 kbps",
		"Codec Compatibility: SUPPORTED",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ResourceInfo() output missing %q", want)
		}
	}
}

func TestReporter_ResourceInfoUnsupported(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	NewReporter(&out).ResourceInfo(media.New("x.ogg", "OGG", 60.0, 128))

	if !strings.Contains(out.String(), "Codec Compatibility: UNSUPPORTED") {
		t.Error("ResourceInfo() should report UNSUPPORTED for OGG")
	}
}

func TestReporter_Analytics(t *testing.T) {
	t.Parallel()

	buf, err := audio.Generate(1024, 44100)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	times := []float64{100, 101, 100, 102, 100, 101, 100, 100, 101, 100}
	effs := []float64{10, 9.9, 10, 9.8, 10, 9.9, 10, 10, 9.9, 10}

	var out strings.Builder
	if err := NewReporter(&out).Analytics(times, effs, buf); err != nil {
		t.Fatalf("Analytics() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"MEDIA PLAYER PERFORMANCE ANALYSIS REPORT",
		"Total Processing Cycles Completed: 10",
		"Average Processing Time per Cycle: 100.50 milliseconds",
		"Minimum Processing Time Recorded: 100.00 milliseconds",
		"Maximum Processing Time Recorded: 102.00 milliseconds",
		"Total Cumulative Processing Time: 1005.00 milliseconds",
		"Total Audio Samples Processed: 1024",
		"Peak Amplitude Level Detected: 0.7998",
		"RMS Power Level Calculated: 0.3840",
		"Dynamic Range Analysis: 2.0827",
		"✓ Processing performance demonstrates optimal codec efficiency",
		// the 1024-sample buffer peaks just below the 0.8 threshold
		"⚠ Audio signal may require amplitude normalization processing",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Analytics() output missing %q", want)
		}
	}

	for _, unwanted := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("Analytics() output contains %q", unwanted)
		}
	}
}

func TestReporter_AnalyticsSlowVerdict(t *testing.T) {
	t.Parallel()

	buf, err := audio.Generate(1024, 44100)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	times := []float64{200, 210, 190}
	effs := []float64{5, 4.8, 5.3}

	var out strings.Builder
	if err := NewReporter(&out).Analytics(times, effs, buf); err != nil {
		t.Fatalf("Analytics() error = %v", err)
	}

	if !strings.Contains(out.String(), "⚠ Processing performance indicates potential optimization opportunities") {
		t.Error("Analytics() should flag mean processing time >= 150ms")
	}
}

func TestReporter_AnalyticsZeroRMS(t *testing.T) {
	t.Parallel()

	// A 1-sample buffer is silent; the dynamic range is undefined and the
	// report must say so instead of printing a non-finite value.
	buf, err := audio.Generate(1, 44100)
	if err != nil {
		t.Fatalf("Generate(1) error = %v", err)
	}

	var out strings.Builder
	if err := NewReporter(&out).Analytics([]float64{100}, []float64{10}, buf); err != nil {
		t.Fatalf("Analytics() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Dynamic Range Analysis: undefined (RMS power is zero)") {
		t.Error("Analytics() missing the zero-RMS warning line")
	}
	for _, unwanted := range []string{"NaN", "Inf"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("Analytics() output contains %q", unwanted)
		}
	}
}

func TestReporter_AnalyticsEmptySeries(t *testing.T) {
	t.Parallel()

	buf, err := audio.Generate(16, 44100)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var out strings.Builder
	err = NewReporter(&out).Analytics(nil, nil, buf)
	if !errors.Is(err, ErrEmptySeries) {
		t.Errorf("Analytics(nil series) error = %v, want ErrEmptySeries", err)
	}
}
