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

import "errors"

// ErrShapeMismatch is wrapped with fmt.Errorf for context and returned
// before any kernel runs, whenever Paired's row counts disagree or the
// output slice's length does not match the requested shape. Every call
// takes a single inner dimension n; Matrix strides are not checked
// against it.
var ErrShapeMismatch = errors.New("batch: shape mismatch")

// ErrUnsupportedKernel is returned when the caller passes a nil
// kernels.KernelFunc, the shape kernels.Resolve returns for an
// unsupported (metric, dtype) combination.
var ErrUnsupportedKernel = errors.New("batch: unsupported kernel")
