// Copyright 2024 The University of Queensland
// Copyright 2025 Contriboss
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

// Command intervalidusdemo exercises a dimensional store end to end: it
// sets a base interval and an overlapping override, logs the resulting
// records, then writes two versions into a versioned store and logs the
// set of versions its records start at.
package main

import (
	"flag"
	"fmt"
	"os"

	intervalidus "github.com/contriboss/intervalidus-go"
	"github.com/contriboss/intervalidus-go/domainvalue"
	"github.com/contriboss/intervalidus-go/versioned"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	low := flag.Int("low", 1, "lower bound of the demo interval")
	high := flag.Int("high", 10, "upper bound of the demo interval")
	flag.Parse()

	logger, err := buildLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "building logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	runID := uuid.New()
	logger.Info("starting demo run", zap.String("run_id", runID.String()))

	if err := run(logger, *low, *high); err != nil {
		logger.Error("demo run failed", zap.Error(err))
		os.Exit(1)
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(logger *zap.Logger, low, high int) error {
	ws := intervalidus.Witnesses[int]{domainvalue.DefaultInt()}
	store := intervalidus.NewStore[string, int](ws, intervalidus.WithLogger[string, int](logger))

	base, err := intervalidus.NewIntervalN[int](ws,
		intervalidus.NewDomainN(intervalidus.Point1D(low)),
		intervalidus.NewDomainN(intervalidus.Point1D(high)))
	if err != nil {
		return err
	}
	store.AddValidData(intervalidus.ValidData[string, int]{Interval: base, Value: "initial"})

	overlay, err := intervalidus.NewIntervalN[int](ws,
		intervalidus.NewDomainN(intervalidus.Point1D(low+2)),
		intervalidus.NewDomainN(intervalidus.Point1D(high-2)))
	if err != nil {
		return err
	}
	store.Set(intervalidus.ValidData[string, int]{Interval: overlay, Value: "override"})

	for _, rec := range store.GetAll() {
		logger.Info("record", zap.String("interval", rec.Interval.String()), zap.String("value", rec.Value))
	}

	vs := versioned.New[string](ws)
	vs.Set(versioned.Current(), base, "v0-value")
	if _, err := vs.IncrementCurrentVersion(); err != nil {
		return err
	}
	vs.Set(versioned.Current(), overlay, "v1-value")
	logger.Info("used versions", zap.Stringer("bitmap", vs.UsedVersions()))

	return nil
}
