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

func TestImmutableLeavesReceiverUnchanged(t *testing.T) {
	base := NewStore[string, int](ws1D())
	base.AddValidData(ValidData[string, int]{Interval: mustInterval1(t, 1, 5), Value: "a"})

	im := NewImmutable[string, int](base)
	next := im.Set(ValidData[string, int]{Interval: mustInterval1(t, 10, 12), Value: "b"})

	require.Len(t, base.GetAll(), 1)
	require.Len(t, next.Store().GetAll(), 2)
}

func TestMutableWritesThroughToReceiver(t *testing.T) {
	base := NewStore[string, int](ws1D())
	mut := NewMutable[string, int](base)
	mut.AddValidData(ValidData[string, int]{Interval: mustInterval1(t, 1, 5), Value: "a"})

	require.Len(t, base.GetAll(), 1)
}

func TestImmutableMergeLeavesBothReceiversUnchanged(t *testing.T) {
	base := NewStore[string, int](ws1D())
	base.AddValidData(ValidData[string, int]{Interval: mustInterval1(t, 1, 10), Value: "a"})
	im := NewImmutable[string, int](base)

	other := NewStore[string, int](ws1D())
	other.AddValidData(ValidData[string, int]{Interval: mustInterval1(t, 5, 15), Value: "b"})
	imOther := NewImmutable[string, int](other)

	merged := im.Merge(imOther, func(existing, incoming string) string { return existing + "+" + incoming })

	require.Len(t, base.GetAll(), 1)
	require.Len(t, other.GetAll(), 1)

	v, ok := merged.Store().Get(NewDomainN(Point1D(7)))
	require.True(t, ok)
	require.Equal(t, "a+b", v)
}
