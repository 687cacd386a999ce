// Package template defines the engine-agnostic template contract used by
// template-defined macros and by hosts that call macros from templates.
package template
