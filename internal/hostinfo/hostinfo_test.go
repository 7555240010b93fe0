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

package hostinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	info := Detect()
	if info.GOOS != runtime.GOOS || info.GOARCH != runtime.GOARCH {
		t.Errorf("Detect() platform = %s/%s, want %s/%s", info.GOOS, info.GOARCH, runtime.GOOS, runtime.GOARCH)
	}
	if info.NumCPU < 1 || info.GOMAXPROCS < 1 {
		t.Errorf("Detect() cpus=%d procs=%d", info.NumCPU, info.GOMAXPROCS)
	}
	if info.Vector == "" {
		t.Errorf("Detect() returned an empty vector name")
	}
	if !strings.Contains(info.String(), "vector="+info.Vector) {
		t.Errorf("String() = %q does not mention the vector level", info.String())
	}
}

func TestDetectNoCPUInfo(t *testing.T) {
	t.Setenv("QSORT_NO_CPUINFO", "1")
	info := Detect()
	if info.Vector != "scalar" || len(info.Features) != 0 {
		t.Errorf("Detect() with QSORT_NO_CPUINFO = %q %v, want scalar and no features", info.Vector, info.Features)
	}
	if info.FeatureList() != "none" {
		t.Errorf("FeatureList() = %q, want none", info.FeatureList())
	}
}

func TestNoCPUInfoEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("QSORT_NO_CPUINFO", tt.val)
		if got := NoCPUInfoEnv(); got != tt.want {
			t.Errorf("NoCPUInfoEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestFeatureList(t *testing.T) {
	info := Info{Features: []string{"avx2", "bmi2"}}
	if got := info.FeatureList(); got != "avx2,bmi2" {
		t.Errorf("FeatureList() = %q", got)
	}
}
