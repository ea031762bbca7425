// Package patterns compiles and evaluates the file globs used to scope overrides.
//
// # Syntax
//
// Patterns are globs over slash-separated relative paths:
//
//   - `*` matches any run of characters except `/`
//   - `**` matches any run of characters including `/`; as a whole segment
//     it also matches zero segments, so `src/**/test/*` matches `src/test/a.ts`
//   - `?` matches exactly one character except `/`
//   - `[abc]`, `[!abc]`, `[a-z]` match one character from a class
//   - `{ts,tsx}` matches any of the comma separated alternatives
//
// Matching is anchored and case-sensitive.
//
// # Base Name Patterns
//
// A pattern without `/` is matched against the file's base name, at any
// depth: `*.test.ts` matches `src/foo/bar.test.ts`. A pattern containing `/`
// is matched against the whole relative path. A leading `./` or `/` anchors a
// pattern to the configuration root, so `/README.md` only matches the top
// level file.
package patterns
