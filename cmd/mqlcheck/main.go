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

// Package main provides a command-line tool that decodes a BSON document
// from a file and reports whether a query document matches it.
package main

import (
	"flag"
	"log/slog"
	"os"

	"example.com/lagoondb/mql/bsonval"
	"example.com/lagoondb/mql/match"
)

func main() {
	var (
		docPath   = flag.String("doc", "", "path to a file containing a raw BSON document")
		queryPath = flag.String("query", "", "path to a file containing a raw BSON query document")
		verbose   = flag.Bool("v", false, "log the decoded document and parsed query")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *docPath == "" || *queryPath == "" {
		logger.Error("both -doc and -query are required")
		os.Exit(2)
	}

	doc, err := decodeDocumentFile(*docPath)
	if err != nil {
		logger.Error("failed to decode document", slog.String("path", *docPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Debug("decoded document", slog.Any("doc", doc))

	queryDoc, err := decodeDocumentFile(*queryPath)
	if err != nil {
		logger.Error("failed to decode query", slog.String("path", *queryPath), slog.String("error", err.Error()))
		os.Exit(1)
	}

	expr, err := match.ParsePredicateTopLevel(queryDoc)
	if err != nil {
		logger.Error("failed to parse query", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Debug("parsed query", slog.Any("expr", expr))

	matches := match.Matches(expr, doc)

	logger.Info("evaluated match", slog.Bool("matches", matches))

	if !matches {
		os.Exit(1)
	}
}

// decodeDocumentFile reads the entirety of path and decodes it as a single
// BSON document.
func decodeDocumentFile(path string) (*bsonval.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, _, err := bsonval.DecodeDocument(b)
	if err != nil {
		return nil, err
	}

	return doc, nil
}
