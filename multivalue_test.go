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
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiValueAddAndRemoveOne(t *testing.T) {
	m := NewMultiValueStore[string, int](ws1D())

	m.AddOne(mustInterval1(t, 1, 10), "red")
	m.AddOne(mustInterval1(t, 5, 15), "blue")

	at7 := m.GetAllValues(NewDomainN(Point1D(7)))
	sort.Strings(at7)
	require.Equal(t, []string{"blue", "red"}, at7)

	at2 := m.GetAllValues(NewDomainN(Point1D(2)))
	require.Equal(t, []string{"red"}, at2)

	m.RemoveOne(mustInterval1(t, 1, 15), "red")
	at7 = m.GetAllValues(NewDomainN(Point1D(7)))
	require.Equal(t, []string{"blue"}, at7)

	at2 = m.GetAllValues(NewDomainN(Point1D(2)))
	require.Empty(t, at2)
}
