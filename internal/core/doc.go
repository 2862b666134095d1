// Package core provides the business logic for the pipe stock search tool.
//
// This package has no UI dependencies. The web layer, tests, or any other
// frontend drive it through the same small set of functions.
//
// # Pipeline
//
// A session is built once by [Load]:
//
//  1. [LatestFile] picks the stock workbook from the stock directory
//  2. [ReadWorkbook] parses the first worksheet with excelize
//  3. [ValidateHeaders] checks the required columns are present
//  4. [Normalize] turns raw rows into typed [PipeRecord] values
//
// The resulting [Session] is immutable. Every user interaction then runs
// [Filter] and, on request, [CheckAvailability] against the session's table.
// Nothing is cached between interactions; a reload builds a new session and
// replaces the old one wholesale.
//
// # Missing Values
//
// Numeric columns are held as [decimal.NullDecimal]. A cell that cannot be
// read as a number is stored with Valid=false. Missing values never satisfy
// an equality filter, propagate as missing through weight arithmetic, and
// make a record unavailable.
//
// # Error Handling
//
// Loading fails with one of three sentinels: [ErrNoDataFileFound],
// [ErrParse], or [ErrSchemaMismatch]. All three are fatal for the session.
// Technical errors are mapped to user-friendly messages using [MapError]:
//
//   - LOAD001-LOAD003: session load failures
//   - REQ001-REQ002: request input errors
//   - RATE001: throttling
package core
