// Package testguest provides hand-assembled WebAssembly binaries used by
// tests to exercise the "umath" module through real import resolution,
// rather than calling the Go function directly.
package testguest

// AddBinary is a minimal module that consumes "umath"."add": it declares
// the import with the correct (i64,i64)->i64 signature and exports a local
// function forwarding to it. The export is a forwarding function rather
// than a direct re-export of the import, which wazero's compiler engine
// cannot create a callable function for. In text format:
//
//	(module
//	    (import "umath" "add" (func $add (param i64 i64) (result i64)))
//	    (func $add2 (param i64 i64) (result i64)
//	        local.get 0
//	        local.get 1
//	        call $add
//	    )
//	    (export "add" (func $add2))
//	)
var AddBinary = []byte{
	0x00, 0x61, 0x73, 0x6d, // \0asm magic
	0x01, 0x00, 0x00, 0x00, // version 1
	// type section: one type, (func (param i64 i64) (result i64))
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7e, 0x7e, 0x01, 0x7e,
	// import section: (import "umath" "add" (func (type 0)))
	0x02, 0x0d, 0x01,
	0x05, 'u', 'm', 'a', 't', 'h',
	0x03, 'a', 'd', 'd',
	0x00, 0x00,
	// function section: one local function of type 0
	0x03, 0x02, 0x01, 0x00,
	// export section: (export "add" (func 1))
	0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x01,
	// code section: local.get 0, local.get 1, call 0, end
	0x0a, 0x0a, 0x01, 0x08, 0x00,
	0x20, 0x00, 0x20, 0x01, 0x10, 0x00, 0x0b,
}

// MistypedBinary declares the same import with a (f64,f64)->f64 signature,
// which the runtime must reject during instantiation.
var MistypedBinary = []byte{
	0x00, 0x61, 0x73, 0x6d, // \0asm magic
	0x01, 0x00, 0x00, 0x00, // version 1
	// type section: one type, (func (param f64 f64) (result f64))
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7c, 0x7c, 0x01, 0x7c,
	// import section: (import "umath" "add" (func (type 0)))
	0x02, 0x0d, 0x01,
	0x05, 'u', 'm', 'a', 't', 'h',
	0x03, 'a', 'd', 'd',
	0x00, 0x00,
	// function section: one local function of type 0
	0x03, 0x02, 0x01, 0x00,
	// export section: (export "add" (func 1))
	0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x01,
	// code section: local.get 0, local.get 1, call 0, end
	0x0a, 0x0a, 0x01, 0x08, 0x00,
	0x20, 0x00, 0x20, 0x01, 0x10, 0x00, 0x0b,
}
