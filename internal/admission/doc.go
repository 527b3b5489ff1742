// Package admission implements the concrete stages the registrar runs a
// student through: the proximity gate, the fee gate, and room allocation.
//
// Stages are stateless, hold no entity-specific data between invocations, and
// can be composed in any order; the canonical order used by the CLI is
// proximity, payment, allocation.
package admission
