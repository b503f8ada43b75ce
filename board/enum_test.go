package board

import (
	"errors"
	"testing"
)

func TestParseQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Quality
		enabled bool
		wantErr bool
	}{
		{"None", 0, false, false},
		{"", 0, false, false},
		{"ZeroOrderHold", QualityZeroOrderHold, true, false},
		{"Linear", QualityLinear, true, false},
		{"CatmullRom", QualityCatmullRom, true, false},
		{"Lagrange", QualityLagrange, true, false},
		{"WindowedSinc", QualityWindowedSinc, true, false},
		{"WindowedSinc256", QualityWindowedSinc256, true, false},
		{"WindowedSinc8", QualityWindowedSinc8, true, false},
		{"garbage", 0, false, true},
		{"none", 0, false, true},
	}

	for _, tc := range tests {
		got, enabled, err := ParseQuality(tc.name)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownEnumValue) {
				t.Errorf("ParseQuality(%q): expected ErrUnknownEnumValue, got %v", tc.name, err)
			}

			continue
		}

		if err != nil {
			t.Errorf("ParseQuality(%q): unexpected error %v", tc.name, err)
			continue
		}

		if got != tc.want || enabled != tc.enabled {
			t.Errorf("ParseQuality(%q) = (%s, %v), want (%s, %v)", tc.name, got, enabled, tc.want, tc.enabled)
		}
	}
}

func TestQualityIdentifiersFollowSelectionOrder(t *testing.T) {
	t.Parallel()

	for i, name := range Qualities() {
		q, _, err := ParseQuality(name)
		if err != nil {
			t.Fatalf("ParseQuality(%q): %v", name, err)
		}

		if int(q) != i || q.String() != name {
			t.Fatalf("quality %q has identifier %d, want %d", name, int(q), i)
		}
	}
}

func TestQualitySincTaps(t *testing.T) {
	t.Parallel()

	want := map[Quality]int{
		QualityZeroOrderHold:   0,
		QualityLagrange:        0,
		QualityWindowedSinc:    64,
		QualityWindowedSinc256: 256,
		QualityWindowedSinc8:   8,
	}

	for q, taps := range want {
		if got := q.SincTaps(); got != taps {
			t.Errorf("%s.SincTaps() = %d, want %d", q, got, taps)
		}
	}
}

func TestParseLadderMode(t *testing.T) {
	t.Parallel()

	for i, name := range LadderModes() {
		m, err := ParseLadderMode(name)
		if err != nil {
			t.Fatalf("ParseLadderMode(%q): %v", name, err)
		}

		if int(m) != i {
			t.Fatalf("ParseLadderMode(%q) = %d, want %d", name, m, i)
		}
	}

	m, err := ParseLadderMode("")
	if err != nil || m != LadderLPF12 {
		t.Fatalf("empty mode = (%s, %v), want LPF12", m, err)
	}

	_, err = ParseLadderMode("None")
	if !errors.Is(err, ErrUnknownEnumValue) {
		t.Fatalf("expected ErrUnknownEnumValue, got %v", err)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if KindGSMCompressor.String() != "GSMFullRateCompressor" {
		t.Fatalf("got %q", KindGSMCompressor.String())
	}

	if Kind(-1).Valid() || numKinds.Valid() {
		t.Fatal("out-of-range kinds must be invalid")
	}
}
