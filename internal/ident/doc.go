// Package ident turns arbitrary display names into valid, unique code
// identifiers.
//
// The pipeline for a single name:
//  1. Strip diacritics and combining marks.
//  2. Join the words in capitalized-word form ("First Name" -> "firstName").
//  3. If that is not valid, drop punctuation and retry.
//  4. Names that are numeric, or lead with a numeric word, get a sequential
//     fallback name (invalidIdentifier1, invalidIdentifier2, ...).
//  5. Collisions get a numeric suffix (name, name2, name3, ...).
//
// Uniqueness and fallback numbering live in a Scope. Create one Scope per
// table; never share a Scope between tables.
package ident
