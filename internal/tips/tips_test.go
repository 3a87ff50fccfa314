package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownCondition(t *testing.T) {
	t.Parallel()
	got := Lookup("stress")
	require.Len(t, got, 3)
	assert.Equal(t, []string{
		"Take deep breathing breaks",
		"Walk 15 minutes outdoors",
		"Sleep 7–9 hours",
	}, got)
}

func TestLookupNormalizes(t *testing.T) {
	t.Parallel()
	want := Lookup("diabetes")
	for _, in := range []string{"Diabetes", "DIABETES", "  diabetes  ", "\tDiaBetes\n"} {
		assert.Equal(t, want, Lookup(in), "input %q", in)
	}
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Lookup("unknown-condition-xyz"))
	assert.Empty(t, Lookup(""))
	assert.Empty(t, Lookup("   "))
}

func TestFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"known",
			"hypertension",
			"- Lower sodium intake\n- Do 150 min aerobic activity weekly\n- Increase potassium-rich foods",
		},
		{
			"known mixed case",
			" Hypertension ",
			"- Lower sodium intake\n- Do 150 min aerobic activity weekly\n- Increase potassium-rich foods",
		},
		{"unknown", "gout", "No tips found for: gout"},
		{"empty", "", "No tips found for: "},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestConditions(t *testing.T) {
	t.Parallel()
	got := Conditions()
	assert.ElementsMatch(t, []string{"stress", "diabetes", "hypertension"}, got)
}
