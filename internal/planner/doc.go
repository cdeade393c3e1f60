// Package planner derives the build plan for a generated model.
//
// The planner turns a compiler configuration snapshot and the generated-file
// descriptor list into a BuildPlan: the enabled feature tags, the support
// library sources to compile, the preprocessor macros, and the generated
// model sources and headers. Planning is pure; the same inputs always give
// the same plan.
//
// Key responsibilities:
//   - Order feature tags and support sources by a fixed priority
//   - Add the SystemC macro only in SystemC mode
//   - Partition C/C++ descriptors into sources and headers, keeping order
package planner
