// Package diag defines the core diagnostic model shared by the checker,
// the driver, and the output formatters.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Path – the catalog file the finding belongs to.
//   - Rule – the stable name of the rule that produced it.
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Message – human oriented text; keep it short and actionable.
//   - Lines – the reconstructed catalog lines shown in the report, each with
//     optional highlight byte ranges (see Span).
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering responsibilities live in internal/diagfmt, whereas orchestration
// lives in internal/driver.
//
// Keep the data model deterministic: Bag.Sort orders diagnostics by first
// line, rule, and message so repeated runs over the same inputs produce
// byte-identical output.
package diag
