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

// Package cd provides the conceptual-dependency form: the tree
// representation used both for stored values and for instantiation
// templates.
//
// A Form is an Atom, a Number, a Var (a named reference into an
// environment), a Frame (a header plus ordered role/filler pairs), or
// a List of independent Forms (a compound concept).
//
// Instantiate resolves a template against a Binding into a concrete
// result tree, pruning roles whose fillers come out absent and
// refusing to follow cyclic variable references.
//
// Parse and Form.String read and write the standard parenthesized
// syntax:
//
//	(ptrans (actor (person (name (jack)))) (to (store)))
package cd
