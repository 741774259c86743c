package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitDelimited(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "json array form", in: `["Java", "SQL"]`, want: []string{"Java", "SQL"}},
		{name: "plain csv", in: "Go, Kubernetes,Postgres", want: []string{"Go", "Kubernetes", "Postgres"}},
		{name: "empty tokens dropped", in: "Go,, ,SQL,", want: []string{"Go", "SQL"}},
		{name: "single quotes", in: "['Pune', 'Remote']", want: []string{"Pune", "Remote"}},
		{name: "null token", in: `["Java", null]`, want: []string{"Java"}},
		{name: "empty string", in: "", want: []string{}},
		{name: "only brackets", in: "[]", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitDelimited(tt.in))
		})
	}
}

func TestJoinDelimited(t *testing.T) {
	assert.Equal(t, "Go, SQL", JoinDelimited([]string{" Go ", "", "SQL"}))
	assert.Equal(t, "New York NY", JoinDelimited([]string{"New York, NY"}))
	assert.Equal(t, "Pune, Navi Mumbai", JoinDelimited([]string{"Pune", "  Navi   Mumbai ,"}))
	assert.Equal(t, "", JoinDelimited(nil))
}

func TestParseSalary(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5 LPA", 12.5},
		{"8 LPA", 8},
		{"INR 600000 per annum", 600000},
		{"1,200,000 INR", 1200000},
		{"INR 12,00,000", 1200000},
		{"1,250.50 USD/month", 1250.5},
		{"8, 10 LPA", 8},
		{"Negotiable", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseSalary(tt.in), 1e-9)
		})
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		dob    string
		want   int
		wantOK bool
	}{
		{name: "birthday passed", dob: "1990-03-01", want: 36, wantOK: true},
		{name: "birthday today", dob: "2000-10-19", want: 26, wantOK: true},
		{name: "birthday tomorrow", dob: "2000-10-20", want: 25, wantOK: true},
		{name: "rfc3339", dob: "1995-12-31T00:00:00Z", want: 30, wantOK: true},
		{name: "empty", dob: "", wantOK: false},
		{name: "garbage", dob: "sometime in the 90s", wantOK: false},
		{name: "future", dob: "2030-01-01", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Age(tt.dob, now)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAgeOrDefault(t *testing.T) {
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	age, dob := AgeOrDefault("", now)
	assert.Equal(t, DefaultAge, age)
	assert.Equal(t, DefaultDateOfBirth, dob)

	age, dob = AgeOrDefault("1996-01-15", now)
	assert.Equal(t, 30, age)
	assert.Equal(t, "1996-01-15", dob)
}

func TestTruncate(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f"}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, Truncate(in, 5))
	assert.Equal(t, []string{"a"}, Truncate([]string{"a"}, 5))
}
