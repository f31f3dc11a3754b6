package capability

import (
	"slices"
	"testing"
)

func TestLanes(t *testing.T) {
	cases := []struct {
		w   Width
		n8  int
		n16 int
		n32 int
		n64 int
	}{
		{W128, 16, 8, 4, 2},
		{W256, 32, 16, 8, 4},
		{W512, 64, 32, 16, 8},
	}
	for _, tc := range cases {
		if got := Lanes[int8](tc.w); got != tc.n8 {
			t.Errorf("Lanes[int8](%v) = %d, want %d", tc.w, got, tc.n8)
		}
		if got := Lanes[uint16](tc.w); got != tc.n16 {
			t.Errorf("Lanes[uint16](%v) = %d, want %d", tc.w, got, tc.n16)
		}
		if got := Lanes[float32](tc.w); got != tc.n32 {
			t.Errorf("Lanes[float32](%v) = %d, want %d", tc.w, got, tc.n32)
		}
		if got := Lanes[float64](tc.w); got != tc.n64 {
			t.Errorf("Lanes[float64](%v) = %d, want %d", tc.w, got, tc.n64)
		}
	}
	if got := Lanes[struct{}](W128); got != 0 {
		t.Errorf("Lanes[struct{}] = %d, want 0", got)
	}
}

func TestWidths(t *testing.T) {
	cases := []struct {
		set  Set
		want []Width
	}{
		{Naive(), nil},
		{SSE2(), []Width{W128}},
		{SSE3(), []Width{W128}},
		{AVX2(), []Width{W256, W128}},
		{AVX512(), []Width{W512, W256, W128}},
		{NEON(), []Width{W128}},
	}
	for _, tc := range cases {
		if got := tc.set.Widths(); !slices.Equal(got, tc.want) {
			t.Errorf("%s.Widths() = %v, want %v", tc.set, got, tc.want)
		}
		for _, w := range []Width{W128, W256, W512} {
			want := slices.Contains(tc.want, w)
			if got := tc.set.Supports(w); got != want {
				t.Errorf("%s.Supports(%v) = %v, want %v", tc.set, w, got, want)
			}
		}
		if tc.set.Supports(Width(64)) || tc.set.Supports(0) {
			t.Errorf("%s supports an invalid width", tc.set)
		}
		if tc.set.IsNaive() != (len(tc.want) == 0) {
			t.Errorf("%s.IsNaive() = %v", tc.set, tc.set.IsNaive())
		}
	}
}

func TestNarrower(t *testing.T) {
	if W512.Narrower() != W256 || W256.Narrower() != W128 || W128.Narrower() != 0 {
		t.Error("Narrower chain broken")
	}
	if W256.Bytes() != 32 {
		t.Errorf("W256.Bytes() = %d", W256.Bytes())
	}
	if Width(0).String() != "scalar" || W512.String() != "512-bit" {
		t.Error("unexpected width names")
	}
}

func TestTarget(t *testing.T) {
	target := Target()
	if !slices.Contains(Known(), target) {
		t.Fatalf("Target() %+v is not a known set", target)
	}
	if target.Widest != TargetWidest {
		t.Errorf("Target().Widest = %v, TargetWidest = %v", target.Widest, TargetWidest)
	}
	if IsNaive() != TargetIsNaive || target.IsNaive() != TargetIsNaive {
		t.Errorf("IsNaive() = %v, TargetIsNaive = %v", IsNaive(), TargetIsNaive)
	}
	if SupportsWidth(W128) == TargetIsNaive {
		t.Errorf("SupportsWidth(W128) = %v on target %s", SupportsWidth(W128), target)
	}
}

// TestTargetIsImmutable checks that nothing reachable from the exported API
// changes the compiled target.
func TestTargetIsImmutable(t *testing.T) {
	before := Target()

	got := Target()
	got.Widest = W512
	got.BlockShuffle = true
	got.Name = "changed"

	known := Known()
	for i := range known {
		known[i] = AVX512()
	}
	avx := AVX2()
	avx.Widest = W512
	if got == before || avx == AVX2() {
		t.Fatal("copies should differ after modification")
	}

	after := Target()
	if after != before {
		t.Fatalf("Target() changed from %+v to %+v", before, after)
	}
	if SupportsWidth(W512) != before.Supports(W512) {
		t.Errorf("SupportsWidth(W512) = %v, want %v", SupportsWidth(W512), before.Supports(W512))
	}
	if IsNaive() != after.IsNaive() {
		t.Errorf("IsNaive() = %v, Target().IsNaive() = %v", IsNaive(), after.IsNaive())
	}
	if Known()[0] != Naive() || AVX2().Widest != W256 {
		t.Error("known sets changed through a returned copy")
	}
}
