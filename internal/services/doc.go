// Package services defines shared utilities consumed by the admission stages
// and the roster layers.
//
// Key responsibilities:
//   - Context helpers that stamp student names, stage names, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification (validation vs duplicate vs lookup miss) uniform.
//
// Use these helpers when wiring new stage logic so error handling and
// observability stay consistent across the pipeline.
package services
