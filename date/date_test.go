package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestDays(t *testing.T) {
	testCases := []struct {
		from, to Date
		want     int
	}{
		{New(2024, time.September, 30), New(2024, time.October, 30), 30},
		{New(2024, time.September, 30), New(2028, time.May, 30), 1338},
		{New(2024, time.February, 28), New(2024, time.March, 1), 2}, // leap year
		{New(2025, time.March, 30), New(2025, time.March, 31), 1},   // across DST in most zones
		{New(2025, time.January, 10), New(2025, time.January, 1), -9},
		{New(2025, time.January, 1), New(2025, time.January, 1), 0},
	}
	for _, tc := range testCases {
		if got := Days(tc.from, tc.to); got != tc.want {
			t.Errorf("Days(%v, %v) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParseFrom(t *testing.T) {
	ref := New(2026, time.January, 31)
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2028-09-30", want: New(2028, time.September, 30)},
		{in: "2028-9-3", want: New(2028, time.September, 3)},
		{in: " 2024-10-30 ", want: New(2024, time.October, 30)},
		{in: "0d", want: ref},
		{in: "+30d", want: New(2026, time.March, 2)},
		{in: "-1w", want: New(2026, time.January, 24)},
		{in: "+1m", want: New(2026, time.March, 3)}, // Feb 31st normalizes
		{in: "+2y", want: New(2028, time.January, 31)},
		{in: "tomorrow", wantErr: true},
		{in: "2025-13-01", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFrom(tc.in, ref)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseFrom(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseFrom(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := New(2024, time.September, 30)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `"2024-09-30"` {
		t.Errorf("json.Marshal() = %s, want %q", data, `"2024-09-30"`)
	}
	var got Date
	if err := json.Unmarshal([]byte(`"2024-9-30"`), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("json.Unmarshal() = %v, want %v", got, d)
	}
}

func TestMinMax(t *testing.T) {
	a, b, c := New(2025, 1, 1), New(2026, 1, 1), New(2024, 1, 1)
	if got := Min(a, b, c); got != c {
		t.Errorf("Min() = %v, want %v", got, c)
	}
	if got := Max(a, b, c); got != b {
		t.Errorf("Max() = %v, want %v", got, b)
	}
}

func TestIterate(t *testing.T) {
	h1 := new(History[float64])
	h1.Append(New(2025, 1, 1), 1).Append(New(2025, 1, 3), 3)
	h2 := new(History[float64])
	h2.Append(New(2025, 1, 2), 2).Append(New(2025, 1, 3), 3)

	var got []Date
	for d := range Iterate(h1, h2) {
		got = append(got, d)
	}
	want := []Date{New(2025, 1, 1), New(2025, 1, 2), New(2025, 1, 3)}
	if len(got) != len(want) {
		t.Fatalf("Iterate() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Iterate()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
