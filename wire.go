// Copyright 2021 FerretDB Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package wire decodes and encodes OP_MSG frames: a 16-byte header followed,
// for OP_MSG, by a flag word and a sequence of sections. It consumes
// already-buffered bytes and returns parsed frames and residual bytes; it
// never reads from a socket itself except through [ReadFrame], a thin
// length-prefix helper for callers that do want one.
package wire

// Debug is a package switch for callers; no decoding or encoding path in
// this package reads it, so setting it changes no behaviour here.
var Debug bool

// CheckNaNs set to true rejects a frame whose documents contain a float64
// NaN.
var CheckNaNs bool
