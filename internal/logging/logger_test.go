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

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, NewDefaultConfig().Validate())
	assert.NoError(t, Config{Format: "json"}.Validate())
	assert.Error(t, Config{Format: "xml"}.Validate())
}

func TestNewWithSinkJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithSink(Config{Level: zapcore.InfoLevel, Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("scenario done", zap.String("scenario", "random"), zap.Int("size", 1000))
	require.NoError(t, logger.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug entry should be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "scenario done", entry["msg"])
	assert.Equal(t, "random", entry["scenario"])
	assert.EqualValues(t, 1000, entry["size"])
	assert.Contains(t, entry, "ts")
}

func TestNewWithSinkConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithSink(Config{Level: zapcore.DebugLevel, Format: "console"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("verifying", zap.Int("trials", 5))
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "verifying")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Format: "yaml"})
	assert.Error(t, err)
}
