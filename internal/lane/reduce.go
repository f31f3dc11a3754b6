package lane

import "github.com/cwbudde/algo-slicesimd/capability"

// Reduce sums every full chunk of Lanes[T](w) elements of src with the
// shuffle-and-add tree of width w and writes the sum of chunk i to dst[i].
// It returns the number of chunks. Leftover elements are ignored.
//
// dst may alias src: dst[i] is written only after chunk i has been read, and
// never lies past it.
//
// Integer lanes wrap; float lanes round once per add, so the result generally
// differs from a left-to-right sum. Every tree first folds the register onto
// its low 128 bits and then pairs lanes inside those 128 bits:
//
//   - 512 with block shuffle (vshuff32x4): adjacent blocks are swapped and
//     added, then the 256-bit halves; block 0 is (b0+b1)+(b2+b3).
//   - 512 without it, and 256: the high half is added onto the low half
//     (vextractf128), once per halving.
//   - 128, 2 lanes: movhlps + addsd.
//   - 128, 4 lanes: movehdup or shufps(2,3,0,1) or NEON faddp, add, movhlps,
//     addss; all give (v0+v1)+(v2+v3).
//   - 128, 8 or 16 lanes: halving byte shifts (psrldq) and adds.
func Reduce[T Element](w capability.Width, set capability.Set, src, dst []T) int {
	n := capability.Lanes[T](w)
	if n == 0 {
		return 0
	}
	chunks := len(src) / n
	src = src[:chunks*n]
	dst = dst[:chunks]

	switch capability.Lanes[T](capability.W128) {
	case 2:
		reduce2(w, set.BlockShuffle, src, dst)
	case 4:
		reduce4(w, set.BlockShuffle, src, dst)
	default:
		reduceNarrow(w, set.BlockShuffle, n, src, dst)
	}
	return chunks
}

// reduce2 handles 64-bit elements: 2 lanes per 128 bits.
func reduce2[T Element](w capability.Width, shuffle bool, src, dst []T) {
	switch {
	case w == capability.W128:
		for i := range dst {
			c := (*[2]T)(src[2*i:])
			dst[i] = c[0] + c[1]
		}
	case w == capability.W256:
		for i := range dst {
			c := (*[4]T)(src[4*i:])
			dst[i] = (c[0] + c[2]) + (c[1] + c[3])
		}
	case shuffle:
		for i := range dst {
			c := (*[8]T)(src[8*i:])
			a0 := (c[0] + c[2]) + (c[4] + c[6])
			a1 := (c[1] + c[3]) + (c[5] + c[7])
			dst[i] = a0 + a1
		}
	default:
		for i := range dst {
			c := (*[8]T)(src[8*i:])
			a0 := (c[0] + c[4]) + (c[2] + c[6])
			a1 := (c[1] + c[5]) + (c[3] + c[7])
			dst[i] = a0 + a1
		}
	}
}

// reduce4 handles 32-bit elements: 4 lanes per 128 bits.
func reduce4[T Element](w capability.Width, shuffle bool, src, dst []T) {
	switch {
	case w == capability.W128:
		for i := range dst {
			c := (*[4]T)(src[4*i:])
			dst[i] = (c[0] + c[1]) + (c[2] + c[3])
		}
	case w == capability.W256:
		for i := range dst {
			c := (*[8]T)(src[8*i:])
			a0, a1 := c[0]+c[4], c[1]+c[5]
			a2, a3 := c[2]+c[6], c[3]+c[7]
			dst[i] = (a0 + a1) + (a2 + a3)
		}
	case shuffle:
		for i := range dst {
			c := (*[16]T)(src[16*i:])
			a0 := (c[0] + c[4]) + (c[8] + c[12])
			a1 := (c[1] + c[5]) + (c[9] + c[13])
			a2 := (c[2] + c[6]) + (c[10] + c[14])
			a3 := (c[3] + c[7]) + (c[11] + c[15])
			dst[i] = (a0 + a1) + (a2 + a3)
		}
	default:
		for i := range dst {
			c := (*[16]T)(src[16*i:])
			a0 := (c[0] + c[8]) + (c[4] + c[12])
			a1 := (c[1] + c[9]) + (c[5] + c[13])
			a2 := (c[2] + c[10]) + (c[6] + c[14])
			a3 := (c[3] + c[11]) + (c[7] + c[15])
			dst[i] = (a0 + a1) + (a2 + a3)
		}
	}
}

// reduceNarrow handles 16- and 8-bit integers: 8 or 16 lanes per 128 bits.
func reduceNarrow[T Element](w capability.Width, shuffle bool, n int, src, dst []T) {
	k := n * int(capability.W128) / int(w)
	var acc [16]T
	for i := range dst {
		c := src[i*n : (i+1)*n]
		a := acc[:k]
		switch {
		case w == capability.W128:
			copy(a, c)
		case w == capability.W256:
			for j := range a {
				a[j] = c[j] + c[j+k]
			}
		case shuffle:
			for j := range a {
				a[j] = (c[j] + c[j+k]) + (c[j+2*k] + c[j+3*k])
			}
		default:
			for j := range a {
				a[j] = (c[j] + c[j+2*k]) + (c[j+k] + c[j+3*k])
			}
		}
		for h := k / 2; h > 0; h /= 2 {
			for j := 0; j < h; j++ {
				a[j] += a[j+h]
			}
		}
		dst[i] = a[0]
	}
}
