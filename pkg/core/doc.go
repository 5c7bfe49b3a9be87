// Package core defines the shared language of the datatypes system.
//
// This package contains:
//   - The portable basetype vocabulary (BaseType)
//   - Backend configuration as pure data (BackendConfig)
//   - Declarative length grammars (LengthRule)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
