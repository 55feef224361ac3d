/*
 * Copyright 2024 The ctjson Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package ctjson parses JSON documents into user-defined Go structures, and
// serializes them back to JSON text, driven by a schema registered once per
// type.
//
// Unlike encoding/json, the schema is not discovered by reflecting over
// struct tags on every call: each type registers an ordered list of member
// descriptors once (see Register), and every subsequent parse reads that
// list as a flat, already-resolved slice. The parser locates each member's
// value slice with at most one scan of the JSON object text, using a
// per-member name hash to short circuit comparisons and a locations table
// to avoid rescanning members that were skipped over while looking for an
// earlier one.
package ctjson
