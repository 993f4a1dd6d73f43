// Package diagnostic collects the non-fatal warnings raised while turning a
// remote schema into generated code.
//
// Warnings never abort a run. They are reported through a Sink so the
// pipeline stays free of formatting decisions:
//   - unsupported remote field types (the field is kept as a comment)
//   - display names that needed a numeric fallback identifier
package diagnostic
