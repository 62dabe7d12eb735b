package blend

import "testing"

func TestPixelAlpha(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		s, d     uint32
		coverage uint8
		want     uint32
	}{
		{"src over half coverage", SrcOver, 0xffffffff, 0xff000000, 128, 0xff808080},
		{"src over zero coverage", SrcOver, 0xffffffff, 0xff000000, 0, 0xff000000},
		{"src over full coverage", SrcOver, 0xffffffff, 0xff000000, 255, 0xffffffff},
		{"src lerps toward source", Src, 0, 0xffffffff, 128, 0x7f7f7f7f},
		{"clear lerps toward zero", Clear, 0xffffffff, 0xffffffff, 128, 0x7f7f7f7f},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.d
			New(tt.op, false).PixelAlpha(&d, tt.s, tt.coverage)
			if d != tt.want {
				t.Errorf("got %08x, want %08x", d, tt.want)
			}
		})
	}
}

func TestRunMatchesPixelAlpha(t *testing.T) {
	for op := Clear; op < numOps; op++ {
		for _, opaque := range []bool{false, true} {
			c := New(op, opaque)
			dsts := sampleSources
			if opaque {
				dsts = sampleOpaque
			}
			for _, s := range sampleSources {
				for _, cov := range []uint8{0, 1, 128, 254, 255} {
					run := append([]uint32(nil), dsts...)
					c.Run(run, s, cov)
					for i, d := range dsts {
						want := d
						c.PixelAlpha(&want, s, cov)
						if run[i] != want {
							t.Fatalf("%v opaque=%v s=%08x cov=%d d=%08x: Run %08x, PixelAlpha %08x",
								op, opaque, s, cov, d, run[i], want)
						}
					}
				}
			}
		}
	}
}

func TestSpanFoldsAlpha(t *testing.T) {
	dst := []uint32{0xff000000, 0xff000000, 0x00000000}
	src := []uint32{0xffffffff, 0, 0xff0000ff}
	New(SrcOver, false).Span(dst, src, 128)
	want := []uint32{0xff808080, 0xff000000, 0x80000080}
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %08x, want %08x", i, dst[i], want[i])
		}
	}
}

func TestSpanSrcCopies(t *testing.T) {
	src := []uint32{0x80800000, 0, 0xff123456}
	dst := []uint32{1, 2, 3}
	New(Src, false).Span(dst, src, 255)
	for i := range dst {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %08x, want %08x", i, dst[i], src[i])
		}
	}
}

func BenchmarkRunSrcOver(b *testing.B) {
	dst := make([]uint32, 1024)
	c := New(SrcOver, true)
	for i := 0; i < b.N; i++ {
		c.Run(dst, 0x80402010, 200)
	}
}
