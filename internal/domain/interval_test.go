package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, 3, 16, hour, min, 0, 0, time.UTC)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "disjoint",
			a:    Interval{Start: ts(9, 0), End: ts(10, 0)},
			b:    Interval{Start: ts(11, 0), End: ts(12, 0)},
			want: false,
		},
		{
			name: "touching boundaries do not overlap",
			a:    Interval{Start: ts(9, 0), End: ts(10, 0)},
			b:    Interval{Start: ts(10, 0), End: ts(11, 0)},
			want: false,
		},
		{
			name: "partial overlap",
			a:    Interval{Start: ts(9, 0), End: ts(10, 30)},
			b:    Interval{Start: ts(10, 0), End: ts(11, 0)},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{Start: ts(9, 0), End: ts(12, 0)},
			b:    Interval{Start: ts(10, 0), End: ts(11, 0)},
			want: true,
		},
		{
			name: "identical",
			a:    Interval{Start: ts(9, 0), End: ts(10, 0)},
			b:    Interval{Start: ts(9, 0), End: ts(10, 0)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{
			name: "empty input",
			in:   nil,
			want: []Interval{},
		},
		{
			name: "single interval",
			in:   []Interval{{Start: ts(9, 0), End: ts(10, 0)}},
			want: []Interval{{Start: ts(9, 0), End: ts(10, 0)}},
		},
		{
			name: "unsorted disjoint stay separate",
			in: []Interval{
				{Start: ts(12, 0), End: ts(13, 0)},
				{Start: ts(9, 0), End: ts(10, 0)},
			},
			want: []Interval{
				{Start: ts(9, 0), End: ts(10, 0)},
				{Start: ts(12, 0), End: ts(13, 0)},
			},
		},
		{
			name: "overlapping merge",
			in: []Interval{
				{Start: ts(9, 0), End: ts(10, 30)},
				{Start: ts(10, 0), End: ts(11, 0)},
			},
			want: []Interval{{Start: ts(9, 0), End: ts(11, 0)}},
		},
		{
			name: "adjacent merge",
			in: []Interval{
				{Start: ts(9, 0), End: ts(10, 0)},
				{Start: ts(10, 0), End: ts(11, 0)},
			},
			want: []Interval{{Start: ts(9, 0), End: ts(11, 0)}},
		},
		{
			name: "contained interval absorbed",
			in: []Interval{
				{Start: ts(9, 0), End: ts(12, 0)},
				{Start: ts(10, 0), End: ts(11, 0)},
			},
			want: []Interval{{Start: ts(9, 0), End: ts(12, 0)}},
		},
		{
			name: "zero length dropped",
			in: []Interval{
				{Start: ts(9, 0), End: ts(9, 0)},
				{Start: ts(10, 0), End: ts(11, 0)},
			},
			want: []Interval{{Start: ts(10, 0), End: ts(11, 0)}},
		},
		{
			name: "negative length dropped",
			in: []Interval{
				{Start: ts(11, 0), End: ts(10, 0)},
			},
			want: []Interval{},
		},
		{
			name: "chain of overlaps collapses to one",
			in: []Interval{
				{Start: ts(9, 0), End: ts(9, 45)},
				{Start: ts(9, 30), End: ts(10, 15)},
				{Start: ts(10, 0), End: ts(10, 45)},
			},
			want: []Interval{{Start: ts(9, 0), End: ts(10, 45)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeIntervals(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeIntervals_DoesNotMutateInput(t *testing.T) {
	in := []Interval{
		{Start: ts(12, 0), End: ts(13, 0)},
		{Start: ts(9, 0), End: ts(10, 0)},
	}
	_ = MergeIntervals(in)

	assert.Equal(t, ts(12, 0), in[0].Start, "input order must stay intact")
	assert.Equal(t, ts(9, 0), in[1].Start)
}
