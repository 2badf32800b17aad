// SPDX-License-Identifier: MIT
// Copyright (c) 2026 crab21
// Source: github.com/crab21/globset

/*
Package globset classifies candidate strings against an ordered set of glob patterns.

Every pattern keeps its position in the input list as its identity. For each candidate the
matcher reports the ascending indices of all patterns that matched the whole string.

Basic flow:
  - collect patterns (`ParsePatterns`, `LoadPatternsFile`, `LoadPatternsJSON`, `ParseExtensions`)
  - compile matcher (`Compile`)
  - classify candidates (`Classify` / `ClassifyOne` / `ClassifyAll`)
  - hand records to a sink (`NDJSONSink`, `JSONArraySink`, `SummarySink`, `SliceSink`) or use `Run`

Glob syntax follows doublestar conventions with "/" as separator:
  - "*" matches any run of characters except "/"
  - "?" matches one character except "/"
  - "[abc]", "[a-z]" match one listed character
  - "[!a-z]", "[^a-z]" match one character that is not listed, "/" included
  - "{a,b}" matches any of the alternatives
  - "**" as a whole path segment matches zero or more segments
  - "\" escapes the next character

Candidates that are not valid UTF-8 are matched byte-tolerantly: each invalid byte counts as
one U+FFFD character.

Candidates are usually lines of a text file (`LineSource`). Lines that are not valid UTF-8
degrade to an empty or repaired string instead of failing the run.
*/
package globset
