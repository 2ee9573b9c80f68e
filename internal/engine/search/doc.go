// Package search implements scoped literal search and replace over buffer
// lines.
//
// Matching is a plain substring search (not a regular expression) over
// grapheme clusters, optionally case-folded with golang.org/x/text/cases.
// After a hit the scan resumes one glyph past the match start, so
// overlapping occurrences are all reported while a match is never counted
// twice at the same start.
//
// Scopes:
//
//   - ScopeAll: every match on every line
//   - ScopeLine: only the first match on each line
//   - ScopeBlock: matches inside a rectangular block; the block content of
//     each row is extracted (space-padded) and match columns are translated
//     back to absolute display columns
//
// Matches are reported in display columns, ordered by row then start
// column. State keeps the match list of the last search together with a
// circular current index for stepping.
package search
