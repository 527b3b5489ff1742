// Package notifications delivers registrar events to registered observers.
//
// The Hub is an ordered observer registry with synchronous, in-order
// broadcast delivery; observers are decoupled from event producers and only
// implement Notify. The Service layer on top formats enumerated events
// (registration, admission, allocation, errors) into consistent messages so
// stage handlers can publish milestones without duplicating wording.
//
// The default service attaches an ntfy observer when a topic is configured
// and otherwise starts with an empty hub, making Publish a harmless no-op.
package notifications
