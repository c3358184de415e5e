// SPDX-License-Identifier: MIT

// Package config loads the audio pipeline configuration from a YAML file.
//
// The file parameterizes the per-stream normalizer (gap trim and dynamic
// padding durations) and may override encoder settings per output format:
//
//	audio:
//	  sample_rate: 24000
//	  gap_trim_ms: 1
//	  dynamic_gap_trim_padding_ms: 410
//	formats:
//	  mp3:
//	    bitrate_mode: variable
//	    compression_level: 0.5
//
// Absent values fall back to the pipeline defaults. Load validates the
// result and fails on values the pipeline cannot run with.
package config
