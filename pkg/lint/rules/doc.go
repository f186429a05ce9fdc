// Package rules provides the built-in lint rules for bulletlint.
//
// # Rules
//
//   - BL001: bullet-style - Unordered list marker style should be consistent
//
// The "style" option selects the policy:
//
//   - "consistent" (default): the first unordered item in the document
//     decides the marker, later items must match.
//   - "-", "*", "+": a fixed literal marker.
//   - "sublist": the marker rotates with nesting depth ("*", "+", "-").
//
// # Registration
//
// Rules are registered with the default registry via RegisterAll.
// The markdownlint names for this check (MD004, ul-style) are registered
// as aliases so existing configuration files resolve to BL001.
package rules
