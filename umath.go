// Package umath contains a Go-defined arithmetic function importable by
// WebAssembly guests under the module name "umath".
//
// # Exported Function
//
//   - "add" - (param i64 i64) (result i64); operands and result are
//     interpreted as unsigned, so each holds values up to 2^64-1.
//
// By default the addition is checked: a true sum exceeding 64 bits traps
// with ErrOverflow, which the embedder observes as the error returned by
// the in-flight guest invocation. Use FunctionExporter to select wrapping
// or saturating semantics instead.
//
// Embedders bridging a host whose numeric type is signed should convert
// operands with u64.FromInt64 rather than casting, so negative values are
// rejected instead of reinterpreted.
package umath

import (
	"context"
	"errors"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/spinsim/umath/u64"
)

const (
	// ModuleName is the module name guest binaries import from.
	ModuleName = "umath"

	// AddName is the name of the addition function exported by ModuleName.
	AddName = "add"
)

// ErrOverflow is the cause of the trap raised when checked addition
// exceeds 64 bits.
var ErrOverflow = errors.New("unsigned integer overflow")

// MustInstantiate calls Instantiate or panics on error.
//
// This is a simpler function for those who know the module ModuleName is
// not already instantiated, and don't need to unload it.
func MustInstantiate(ctx context.Context, r wazero.Runtime) {
	if _, err := Instantiate(ctx, r); err != nil {
		panic(err)
	}
}

// Instantiate instantiates the ModuleName module into r, with the default
// checked addition semantics.
//
// # Notes
//
//   - Failure cases are documented on wazero.Runtime InstantiateModule.
//   - Closing the wazero.Runtime has the same effect as closing the result.
//   - To change overflow semantics, use FunctionExporter.
func Instantiate(ctx context.Context, r wazero.Runtime) (api.Closer, error) {
	builder := r.NewHostModuleBuilder(ModuleName)
	NewFunctionExporter().ExportFunctions(builder)
	return builder.Instantiate(ctx)
}

// FunctionExporter configures the addition function exported by ModuleName.
//
// # Notes
//
//   - This is an interface for decoupling, not third-party implementations.
type FunctionExporter interface {
	// WithWrappingAdd makes a sum exceeding 64 bits discard the carry and
	// wrap around zero instead of trapping.
	WithWrappingAdd() FunctionExporter

	// WithSaturatingAdd makes a sum exceeding 64 bits clamp to u64.Max
	// instead of trapping.
	WithSaturatingAdd() FunctionExporter

	// ExportFunctions builds functions to export with a
	// wazero.HostModuleBuilder named ModuleName.
	ExportFunctions(wazero.HostModuleBuilder)
}

// NewFunctionExporter returns a FunctionExporter with checked addition.
func NewFunctionExporter() FunctionExporter {
	return &functionExporter{addFn: addChecked}
}

type functionExporter struct {
	addFn func(left, right uint64) uint64
}

// WithWrappingAdd implements FunctionExporter.WithWrappingAdd
func (e *functionExporter) WithWrappingAdd() FunctionExporter {
	return &functionExporter{addFn: u64.Add}
}

// WithSaturatingAdd implements FunctionExporter.WithSaturatingAdd
func (e *functionExporter) WithSaturatingAdd() FunctionExporter {
	return &functionExporter{addFn: u64.AddSat}
}

// ExportFunctions implements FunctionExporter.ExportFunctions
func (e *functionExporter) ExportFunctions(builder wazero.HostModuleBuilder) {
	builder.NewFunctionBuilder().
		WithFunc(e.addFn).
		WithParameterNames("left", "right").
		Export(AddName)
}

// addChecked adds with the default policy: a true sum above 64 bits must
// surface to the caller, not wrap silently. The panic unwinds into the
// runtime, which returns it as the error of the in-flight call.
func addChecked(left, right uint64) uint64 {
	sum, overflow := u64.AddChecked(left, right)
	if overflow {
		panic(ErrOverflow)
	}
	return sum
}
