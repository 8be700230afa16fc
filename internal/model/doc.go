// Package model defines the core data structures used throughout treelister.
//
// This package contains the following main types:
//   - Entry: One filesystem node discovered during traversal
//   - Report: The generated report artifact (header, body, footer, counts)
//   - Format: The report body format (list, tree, markdown)
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Both the scanner and report packages need these types, so
// centralizing them prevents import cycles.
package model
