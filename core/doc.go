/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package core provides the expectation engine for conceptual
// sentence analysis.
//
// Each word of a sentence contributes a Packet of Requests that
// accumulates on a Stack of pending expectations.  A Request is a
// guarded action: an optional test, ordered slot assignments, and
// further Packets to enqueue when it fires.  As each word is
// consumed, the engine repeatedly scans the top Packet for the first
// Request whose test is satisfied against the variable Env, fires it,
// and discards the rest of that Packet -- the cascade.  First match
// wins; there is no backtracking.
//
// Tests and assignments are data, not code: a Request carries a small
// closed expression representation (literal, slot read, equality,
// conjunction, negation, addition) interpreted by Env.Eval.
//
// After the last word, the template held by the "concept" slot is
// instantiated (see the cd package) against the final bindings; that
// concrete tree is the parse result.
//
// To use this package, supply a Lexicon (word to initial Packet,
// usually compiled from YAML by the lexicon package), make an
// Analyzer, and Parse a word sequence.  Tokenizing raw text into
// words and printing the result are the caller's business.
package core
