// SPDX-License-Identifier: EPL-2.0

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/mediasim/audio"
	"github.com/ik5/mediasim/media"
)

const (
	// barSegments is the width of the progress bar in segments, each
	// covering 5% of completion.
	barSegments = 20

	filledSegment = "█"
	emptySegment  = "░"

	// optimalTimeThresholdMS is the mean processing time below which the
	// codec verdict is "optimal". Fixed design constant.
	optimalTimeThresholdMS = 150.0

	// amplitudeThreshold is the peak amplitude above which the signal is
	// considered loud enough for playback. Fixed design constant.
	amplitudeThreshold = 0.8
)

// Reporter formats the simulation's console output. It keeps no state
// between calls beyond the destination writer.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Banner prints the application header.
func (r *Reporter) Banner() {
	fmt.Fprintf(r.w, "Professional Media Player Processing System v1.0\n")
	fmt.Fprintf(r.w, "Advanced Codec Processing and Audio Analysis Framework\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("=", 60))
}

// ResourceInfo prints the media resource configuration block.
func (r *Reporter) ResourceInfo(meta media.Metadata) {
	compatibility := "UNSUPPORTED"
	if meta.CodecSupported {
		compatibility = "SUPPORTED"
	}

	fmt.Fprintf(r.w, "\nMEDIA RESOURCE CONFIGURATION:\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(r.w, "Resource Identifier: %s\n", meta.Identifier)
	fmt.Fprintf(r.w, "Format Specification: %s\n", meta.Format)
	fmt.Fprintf(r.w, "Duration Parameters: %.1f seconds\n", meta.Duration)
	fmt.Fprintf(r.w, "Bit Rate Configuration: %d kbps\n", meta.BitRate)
	fmt.Fprintf(r.w, "Codec Compatibility: %s\n", compatibility)
}

// BufferInfo prints the audio buffer configuration block.
func (r *Reporter) BufferInfo(bufferSize int, sampleRate float64) {
	fmt.Fprintf(r.w, "\nAUDIO BUFFER CONFIGURATION:\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(r.w, "Buffer Capacity: %d samples\n", bufferSize)
	fmt.Fprintf(r.w, "Sampling Frequency: %.1f Hz\n", sampleRate)
	fmt.Fprintf(r.w, "Processing Framework: Real-time audio analysis\n")
}

// SimulationStart prints the simulation section header. The progress lines
// that follow each start with their own newline.
func (r *Reporter) SimulationStart() {
	fmt.Fprintf(r.w, "\nINITIATING MEDIA PROCESSING SIMULATION:\n")
	fmt.Fprintf(r.w, "%s", strings.Repeat("-", 40))
}

// Progress prints one per-cycle progress line: a 20-segment bar, the
// completion percentage and the cycle's performance metrics.
func (r *Reporter) Progress(cycle, total int, processingTimeMS, efficiency float64) {
	percentage := float64(cycle) / float64(total) * 100.0
	filled := int(percentage / 5.0)
	if filled > barSegments {
		filled = barSegments
	}

	var bar strings.Builder
	for position := 0; position < barSegments; position++ {
		if position < filled {
			bar.WriteString(filledSegment)
		} else {
			bar.WriteString(emptySegment)
		}
	}

	fmt.Fprintf(r.w, "\n[Processing Cycle %2d/%d] [%s] %.1f%%", cycle, total, bar.String(), percentage)
	fmt.Fprintf(r.w, " | Processing Time: %.2fms", processingTimeMS)
	fmt.Fprintf(r.w, " | Efficiency: %.3f", efficiency)
}

// Analytics prints the full performance analysis report: descriptive
// statistics for both measurement series, the audio buffer analysis and
// the qualitative verdicts. The dynamic-range line degrades to an explicit
// "undefined" warning when the buffer's RMS power is zero.
func (r *Reporter) Analytics(processingTimes, efficiencies []float64, buf *audio.Buffer) error {
	timeStats, err := Describe(processingTimes)
	if err != nil {
		return fmt.Errorf("processing time series: %w", err)
	}
	efficiencyStats, err := Describe(efficiencies)
	if err != nil {
		return fmt.Errorf("efficiency series: %w", err)
	}

	fmt.Fprintf(r.w, "\n\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintf(r.w, "              MEDIA PLAYER PERFORMANCE ANALYSIS REPORT\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("=", 80))

	fmt.Fprintf(r.w, "\nCODEC PROCESSING PERFORMANCE METRICS:\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 50))
	fmt.Fprintf(r.w, "Total Processing Cycles Completed: %d\n", len(processingTimes))
	fmt.Fprintf(r.w, "Average Processing Time per Cycle: %.2f milliseconds\n", timeStats.Mean)
	fmt.Fprintf(r.w, "Minimum Processing Time Recorded: %.2f milliseconds\n", timeStats.Min)
	fmt.Fprintf(r.w, "Maximum Processing Time Recorded: %.2f milliseconds\n", timeStats.Max)
	fmt.Fprintf(r.w, "Total Cumulative Processing Time: %.2f milliseconds\n", timeStats.Sum)

	fmt.Fprintf(r.w, "\nPROCESSING EFFICIENCY ANALYSIS:\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 50))
	fmt.Fprintf(r.w, "Average Processing Efficiency: %.4f\n", efficiencyStats.Mean)
	fmt.Fprintf(r.w, "Peak Efficiency Achievement: %.4f\n", efficiencyStats.Max)
	fmt.Fprintf(r.w, "Minimum Efficiency Recorded: %.4f\n", efficiencyStats.Min)

	fmt.Fprintf(r.w, "\nAUDIO BUFFER ANALYSIS RESULTS:\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 50))
	fmt.Fprintf(r.w, "Total Audio Samples Processed: %d\n", buf.Count)
	fmt.Fprintf(r.w, "Peak Amplitude Level Detected: %.4f\n", buf.Peak)
	fmt.Fprintf(r.w, "RMS Power Level Calculated: %.4f\n", buf.RMS)

	dynamicRange, err := buf.DynamicRange()
	switch {
	case errors.Is(err, audio.ErrZeroRMS):
		fmt.Fprintf(r.w, "Dynamic Range Analysis: undefined (RMS power is zero)\n")
	case err != nil:
		return fmt.Errorf("dynamic range: %w", err)
	default:
		fmt.Fprintf(r.w, "Dynamic Range Analysis: %.4f\n", dynamicRange)
	}

	fmt.Fprintf(r.w, "\nPROFESSIONAL ANALYSIS INTERPRETATION:\n")
	fmt.Fprintf(r.w, "%s\n", strings.Repeat("-", 50))
	if timeStats.Mean < optimalTimeThresholdMS {
		fmt.Fprintf(r.w, "✓ Processing performance demonstrates optimal codec efficiency\n")
	} else {
		fmt.Fprintf(r.w, "⚠ Processing performance indicates potential optimization opportunities\n")
	}
	if buf.Peak > amplitudeThreshold {
		fmt.Fprintf(r.w, "✓ Audio signal demonstrates sufficient amplitude for quality playback\n")
	} else {
		fmt.Fprintf(r.w, "⚠ Audio signal may require amplitude normalization processing\n")
	}

	fmt.Fprintf(r.w, "\n%s\n", strings.Repeat("=", 80))

	return nil
}

// Done prints the completion status trailer.
func (r *Reporter) Done() {
	fmt.Fprintf(r.w, "\nSYSTEM STATUS: Media processing simulation completed successfully\n")
	fmt.Fprintf(r.w, "All performance metrics have been analyzed and documented\n")
	fmt.Fprintf(r.w, "Program execution terminated with successful status code\n")
}
