// Copyright 2025 go-quicksort Authors
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

//go:build amd64

package hostinfo

import "golang.org/x/sys/cpu"

func detectCPUFeatures() (string, []string) {
	flags := []struct {
		name string
		has  bool
	}{
		{"sse41", cpu.X86.HasSSE41},
		{"sse42", cpu.X86.HasSSE42},
		{"popcnt", cpu.X86.HasPOPCNT},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"bmi1", cpu.X86.HasBMI1},
		{"bmi2", cpu.X86.HasBMI2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
		{"avx512bw", cpu.X86.HasAVX512BW},
		{"avx512vl", cpu.X86.HasAVX512VL},
	}

	var features []string
	for _, f := range flags {
		if f.has {
			features = append(features, f.name)
		}
	}

	vector := "sse2" // x86-64 baseline
	if cpu.X86.HasAVX2 {
		vector = "avx2"
	}
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL {
		vector = "avx512"
	}
	return vector, features
}
