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

package intervalidus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZipPairsOnlyWhereBothSidesCovered(t *testing.T) {
	a := NewStore[string, int](ws1D())
	a.AddValidData(ValidData[string, int]{Interval: mustInterval1(t, 1, 10), Value: "a"})

	b := NewStore[int, int](ws1D())
	b.AddValidData(ValidData[int, int]{Interval: mustInterval1(t, 5, 15), Value: 100})

	zipped := Zip[string, int, int](a, b)

	got := zipped.GetAll()
	require.Len(t, got, 1)
	require.Equal(t, ZipPair[string, int]{First: "a", Second: 100}, got[0].Value)

	v, ok := zipped.Get(NewDomainN(Point1D(7)))
	require.True(t, ok)
	require.Equal(t, ZipPair[string, int]{First: "a", Second: 100}, v)

	_, ok = zipped.Get(NewDomainN(Point1D(2)))
	require.False(t, ok)
	_, ok = zipped.Get(NewDomainN(Point1D(12)))
	require.False(t, ok)
}

func TestZipAllFillsMissingSideWithPlaceholder(t *testing.T) {
	a := NewStore[string, int](ws1D())
	a.AddValidData(ValidData[string, int]{Interval: mustInterval1(t, 1, 10), Value: "a"})

	b := NewStore[int, int](ws1D())
	b.AddValidData(ValidData[int, int]{Interval: mustInterval1(t, 5, 15), Value: 100})

	zipped := ZipAll[string, int, int](a, b, "none", -1)

	v, ok := zipped.Get(NewDomainN(Point1D(2)))
	require.True(t, ok)
	require.Equal(t, ZipPair[string, int]{First: "a", Second: -1}, v)

	v, ok = zipped.Get(NewDomainN(Point1D(12)))
	require.True(t, ok)
	require.Equal(t, ZipPair[string, int]{First: "none", Second: 100}, v)

	v, ok = zipped.Get(NewDomainN(Point1D(7)))
	require.True(t, ok)
	require.Equal(t, ZipPair[string, int]{First: "a", Second: 100}, v)
}
