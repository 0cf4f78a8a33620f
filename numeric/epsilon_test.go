package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	tests := map[string]struct {
		a, b     float64
		expected bool
	}{
		"identical values":            {a: 1.5, b: 1.5, expected: true},
		"within default epsilon":      {a: 1.0, b: 1.0 + 1e-9, expected: true},
		"exactly epsilon apart":       {a: 0.0, b: Epsilon, expected: true},
		"outside default epsilon":     {a: 1.0, b: 1.00001, expected: false},
		"negative within epsilon":     {a: -2.0, b: -2.0 - 1e-8, expected: true},
		"large magnitude difference":  {a: 100.0, b: 101.0, expected: false},
		"opposite signs close values": {a: -1e-9, b: 1e-9, expected: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Eq(tc.a, tc.b))
			assert.Equal(t, tc.expected, Eq(tc.b, tc.a))
		})
	}
}

func TestOrderingPredicates(t *testing.T) {
	tests := map[string]struct {
		a, b                   float64
		lt, le, gt, ge, eq, ne bool
	}{
		"clearly less":    {a: 1.0, b: 2.0, lt: true, le: true, gt: false, ge: false, eq: false, ne: true},
		"clearly greater": {a: 3.0, b: 2.0, lt: false, le: false, gt: true, ge: true, eq: false, ne: true},
		"equal":           {a: 2.0, b: 2.0, lt: false, le: true, gt: false, ge: true, eq: true, ne: false},
		"nearly equal":    {a: 2.0, b: 2.0 + 1e-8, lt: false, le: true, gt: false, ge: true, eq: true, ne: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.lt, Lt(tc.a, tc.b), "Lt")
			assert.Equal(t, tc.le, Le(tc.a, tc.b), "Le")
			assert.Equal(t, tc.gt, Gt(tc.a, tc.b), "Gt")
			assert.Equal(t, tc.ge, Ge(tc.a, tc.b), "Ge")
			assert.Equal(t, tc.eq, Eq(tc.a, tc.b), "Eq")
			assert.Equal(t, tc.ne, Ne(tc.a, tc.b), "Ne")
		})
	}
}

func TestEqEps(t *testing.T) {
	a := 2.759493670886076
	b := 2.75949367088608
	assert.True(t, EqEps(a, b, 1e-13))
	assert.False(t, EqEps(a, b, 1e-16))
}

func TestSnapToEpsilon(t *testing.T) {
	tests := map[string]struct {
		value    float64
		epsilon  float64
		expected float64
	}{
		"close to whole number":   {value: -0.9999999999, epsilon: 1e-9, expected: -1.0},
		"far from whole number":   {value: 1.0001, epsilon: 1e-9, expected: 1.0001},
		"exactly at whole number": {value: 2.0, epsilon: 1e-9, expected: 2.0},
		"just within epsilon":     {value: 1.9999, epsilon: 1e-3, expected: 2.0},
		"just outside epsilon":    {value: 1.9999, epsilon: 1e-5, expected: 1.9999},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SnapToEpsilon(tc.value, tc.epsilon))
		})
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 42, Abs(-42))
	assert.Equal(t, 42, Abs(42))
	assert.Equal(t, int64(1000000), Abs(int64(-1000000)))
	assert.Equal(t, 42.42, Abs(-42.42))
	assert.Equal(t, 0.0, Abs(0.0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(0.5, 1.0, 2.0))
	assert.Equal(t, 2.0, Clamp(3.5, 1.0, 2.0))
	assert.Equal(t, 1.5, Clamp(1.5, 1.0, 2.0))
	assert.Equal(t, 7, Clamp(9, 0, 7))
}
