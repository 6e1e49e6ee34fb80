package booking

import "testing"

func TestOverlaps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			name: "contained interval conflicts",
			a:    Interval{Start: "10:00", End: "11:00"},
			b:    Interval{Start: "10:30", End: "10:45"},
			want: true,
		},
		{
			name: "partial overlap conflicts",
			a:    Interval{Start: "13:00", End: "14:00"},
			b:    Interval{Start: "13:30", End: "14:30"},
			want: true,
		},
		{
			name: "identical intervals conflict",
			a:    Interval{Start: "09:00", End: "10:00"},
			b:    Interval{Start: "09:00", End: "10:00"},
			want: true,
		},
		{
			name: "touching end boundary does not conflict",
			a:    Interval{Start: "09:00", End: "10:00"},
			b:    Interval{Start: "10:00", End: "11:00"},
			want: false,
		},
		{
			name: "touching start boundary does not conflict",
			a:    Interval{Start: "14:00", End: "15:00"},
			b:    Interval{Start: "13:00", End: "14:00"},
			want: false,
		},
		{
			name: "disjoint intervals do not conflict",
			a:    Interval{Start: "09:00", End: "10:00"},
			b:    Interval{Start: "15:00", End: "16:00"},
			want: false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v (symmetry)", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestHasConflict(t *testing.T) {
	t.Parallel()

	existing := []Interval{
		{Start: "09:00", End: "10:00"},
		{Start: "13:00", End: "14:00"},
	}

	t.Run("overlap with any existing reservation rejects", func(t *testing.T) {
		t.Parallel()
		if !HasConflict(existing, Interval{Start: "13:30", End: "14:30"}) {
			t.Error("HasConflict = false, want true for overlapping candidate")
		}
	})

	t.Run("back to back booking is accepted", func(t *testing.T) {
		t.Parallel()
		if HasConflict(existing, Interval{Start: "14:00", End: "15:00"}) {
			t.Error("HasConflict = true, want false for touching boundary")
		}
	})

	t.Run("empty existing set never conflicts", func(t *testing.T) {
		t.Parallel()
		if HasConflict(nil, Interval{Start: "09:00", End: "18:00"}) {
			t.Error("HasConflict = true, want false with no existing reservations")
		}
	})
}
