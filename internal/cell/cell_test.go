// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DerivedAbsent(t *testing.T) {
	c := New[int, string](42)

	assert.Equal(t, 42, c.Source())

	got, ok := c.Derived()
	assert.False(t, ok)
	assert.Equal(t, "", got)
}

func TestSetDerived_ThenPresent(t *testing.T) {
	c := New[int, string](7)
	c.SetDerived("seven")

	got, ok := c.Derived()
	assert.True(t, ok)
	assert.Equal(t, "seven", got)

	// Reads have no side effects; still present.
	got, ok = c.Derived()
	assert.True(t, ok)
	assert.Equal(t, "seven", got)
}

func TestSetSource_ClearsDerived(t *testing.T) {
	c := New[int, string](1)
	c.SetDerived("one")

	c.SetSource(2)

	assert.Equal(t, 2, c.Source())
	_, ok := c.Derived()
	assert.False(t, ok)
}

func TestSetSource_SameValueStillClears(t *testing.T) {
	// No equality short-circuit: re-setting an identical source must still
	// invalidate.
	c := New[int, string](5)
	c.SetDerived("five")

	c.SetSource(5)

	_, ok := c.Derived()
	assert.False(t, ok)
}

func TestSetDerived_Overwrites(t *testing.T) {
	c := New[int, string](3)
	c.SetDerived("three")
	c.SetDerived("III")

	got, ok := c.Derived()
	assert.True(t, ok)
	assert.Equal(t, "III", got)
}

func TestOperationSequences(t *testing.T) {
	tests := []struct {
		name    string
		ops     func(c *Cell[string, int])
		wantSrc string
		wantOK  bool
		want    int
	}{
		{
			name:    "fresh cell",
			ops:     func(c *Cell[string, int]) {},
			wantSrc: "a",
			wantOK:  false,
		},
		{
			name: "derive then replace source",
			ops: func(c *Cell[string, int]) {
				c.SetDerived(1)
				c.SetSource("b")
			},
			wantSrc: "b",
			wantOK:  false,
		},
		{
			name: "replace source then derive",
			ops: func(c *Cell[string, int]) {
				c.SetSource("b")
				c.SetDerived(2)
			},
			wantSrc: "b",
			wantOK:  true,
			want:    2,
		},
		{
			name: "reads between set and get do not disturb",
			ops: func(c *Cell[string, int]) {
				c.SetSource("b")
				_ = c.Source()
				_, _ = c.Derived()
				_ = c.Source()
			},
			wantSrc: "b",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[string, int]("a")
			tt.ops(c)

			assert.Equal(t, tt.wantSrc, c.Source())
			got, ok := c.Derived()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
