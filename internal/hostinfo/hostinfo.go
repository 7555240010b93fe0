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

// Package hostinfo describes the machine a benchmark runs on.
package hostinfo

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Info is a snapshot of the host relevant to sorting benchmarks.
type Info struct {
	GOOS       string
	GOARCH     string
	GoVersion  string
	NumCPU     int
	GOMAXPROCS int

	// Vector is the widest SIMD extension detected ("avx512", "avx2",
	// "neon", ...) or "scalar".
	Vector string

	// Features lists the CPU features detected, lower case.
	Features []string
}

// NoCPUInfoEnv checks if the QSORT_NO_CPUINFO environment variable is set.
// When set, Detect skips feature probing and reports a scalar host. This is
// useful for reproducible report headers.
func NoCPUInfoEnv() bool {
	val := os.Getenv("QSORT_NO_CPUINFO")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Detect probes the current host.
func Detect() Info {
	info := Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		GoVersion:  runtime.Version(),
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Vector:     "scalar",
	}
	if NoCPUInfoEnv() {
		return info
	}
	info.Vector, info.Features = detectCPUFeatures()
	return info
}

// String returns a one-line summary, e.g.
// "linux/amd64 go1.26.0 cpus=8 procs=8 vector=avx2".
func (i Info) String() string {
	return fmt.Sprintf("%s/%s %s cpus=%d procs=%d vector=%s",
		i.GOOS, i.GOARCH, i.GoVersion, i.NumCPU, i.GOMAXPROCS, i.Vector)
}

// FeatureList joins Features with commas, or returns "none".
func (i Info) FeatureList() string {
	if len(i.Features) == 0 {
		return "none"
	}
	return strings.Join(i.Features, ",")
}
