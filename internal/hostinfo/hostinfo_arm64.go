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

//go:build arm64

package hostinfo

import "golang.org/x/sys/cpu"

func detectCPUFeatures() (string, []string) {
	flags := []struct {
		name string
		has  bool
	}{
		{"asimd", cpu.ARM64.HasASIMD},
		{"crc32", cpu.ARM64.HasCRC32},
		{"atomics", cpu.ARM64.HasATOMICS},
		{"asimddp", cpu.ARM64.HasASIMDDP},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
	}

	var features []string
	for _, f := range flags {
		if f.has {
			features = append(features, f.name)
		}
	}

	// ASIMD is part of the ARMv8-A base architecture.
	vector := "scalar"
	if cpu.ARM64.HasASIMD {
		vector = "neon"
	}
	if cpu.ARM64.HasSVE {
		vector = "sve"
	}
	return vector, features
}
