// Copyright 2026 kdist Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"fmt"
	"unsafe"

	"github.com/kdist/kdist/kernels"
)

// Matrix describes one operand of a batch call: Rows contiguous-or-not
// rows of Stride bytes each, starting at Base. Rows need not be
// physically contiguous in memory; only Stride needs to be correct.
type Matrix struct {
	Base   unsafe.Pointer
	Rows   int
	Stride uintptr
}

func (m Matrix) row(i int) unsafe.Pointer {
	return unsafe.Add(m.Base, uintptr(i)*m.Stride)
}

// OneToOne calls kernel once against a single pair of rows. out must
// point at one float64 for a real-valued metric, or two contiguous
// float64s for a complex one.
func OneToOne(kernel kernels.KernelFunc, a, b unsafe.Pointer, n uintptr, out *float64) error {
	if kernel == nil {
		return ErrUnsupportedKernel
	}
	kernel(a, b, n, out)
	return nil
}

// Broadcast computes k(a, m.row(r), n) for every row r of m, writing
// width float64s per row into out (width is 1 for a real-valued metric,
// 2 for a complex one). len(out) must equal m.Rows*width.
func Broadcast(kernel kernels.KernelFunc, a unsafe.Pointer, m Matrix, n uintptr, width, threads int, out []float64) error {
	if kernel == nil {
		return ErrUnsupportedKernel
	}
	if len(out) != m.Rows*width {
		return fmt.Errorf("%w: output length %d, want %d", ErrShapeMismatch, len(out), m.Rows*width)
	}

	p := newPool(threads)
	defer p.close()
	p.parallelFor(m.Rows, func(start, end int) {
		for r := start; r < end; r++ {
			kernel(a, m.row(r), n, &out[r*width])
		}
	})
	return nil
}

// Paired computes k(a.row(r), b.row(r), n) for matching rows of a and b.
// a and b must have equal Rows; len(out) must equal a.Rows*width.
func Paired(kernel kernels.KernelFunc, a, b Matrix, n uintptr, width, threads int, out []float64) error {
	if kernel == nil {
		return ErrUnsupportedKernel
	}
	if a.Rows != b.Rows {
		return fmt.Errorf("%w: paired rows %d vs %d", ErrShapeMismatch, a.Rows, b.Rows)
	}
	if len(out) != a.Rows*width {
		return fmt.Errorf("%w: output length %d, want %d", ErrShapeMismatch, len(out), a.Rows*width)
	}

	p := newPool(threads)
	defer p.close()
	p.parallelFor(a.Rows, func(start, end int) {
		for r := start; r < end; r++ {
			kernel(a.row(r), b.row(r), n, &out[r*width])
		}
	})
	return nil
}

// AllPairs computes k(a.row(i), b.row(j), n) for every (i, j), writing
// cell (i, j) at out[(i*b.Rows+j)*width:]. len(out) must equal
// a.Rows*b.Rows*width. Work is split by the outer (i) dimension so every
// worker's row of writes lands in a disjoint slice of out.
func AllPairs(kernel kernels.KernelFunc, a, b Matrix, n uintptr, width, threads int, out []float64) error {
	if kernel == nil {
		return ErrUnsupportedKernel
	}
	if len(out) != a.Rows*b.Rows*width {
		return fmt.Errorf("%w: output length %d, want %d", ErrShapeMismatch, len(out), a.Rows*b.Rows*width)
	}

	p := newPool(threads)
	defer p.close()
	rowWidth := b.Rows * width
	p.parallelFor(a.Rows, func(start, end int) {
		for i := start; i < end; i++ {
			ai := a.row(i)
			base := i * rowWidth
			for j := 0; j < b.Rows; j++ {
				kernel(ai, b.row(j), n, &out[base+j*width])
			}
		}
	})
	return nil
}
