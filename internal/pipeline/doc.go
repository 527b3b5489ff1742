// Package pipeline runs students through an ordered sequence of admission
// stages with first-failure-aborts semantics.
//
// The runner owns the stage order, tags every walk with a correlation ID,
// injects stage-scoped loggers, and funnels failures into the notification
// service so rejections and defects surface consistently. Expected validation
// outcomes travel as stage.Failure values and are returned to the caller
// unchanged.
package pipeline
