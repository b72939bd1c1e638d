package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_Prod(t *testing.T) {
	// given
	var buf bytes.Buffer
	log := New("prod", "inventory", &buf, false)

	// when
	log.Debug("hidden")
	log.Info("product added", "id", "P001")

	// then only the info line is written, as JSON
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "product added", line["msg"])
	assert.Equal(t, "inventory", line["program"])
	assert.Len(t, line["session"], 8)
}

func Test_New_Dev(t *testing.T) {
	var buf bytes.Buffer
	log := New("dev", "students", &buf, false)

	log.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "program=students")
}

func Test_New_ConsoleShowsWarningsOnly(t *testing.T) {
	for _, env := range []string{"dev", "staging", "prod"} {
		t.Run(env, func(t *testing.T) {
			// given a logger drawing on the same terminal as the menu
			var buf bytes.Buffer
			log := New(env, "inventory", &buf, true)

			// when
			log.Debug("data file written")
			log.Info("product added")
			log.Warn("load stopped at unparsable line")

			// then
			assert.NotContains(t, buf.String(), "data file written")
			assert.NotContains(t, buf.String(), "product added")
			assert.Contains(t, buf.String(), "load stopped at unparsable line")
		})
	}
}

func Test_SessionID(t *testing.T) {
	a, b := SessionID(), SessionID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}

func Test_Open(t *testing.T) {
	w, closeFn, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, os.Stderr, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "app.log")
	w, closeFn, err = Open(path)
	require.NoError(t, err)
	New("prod", "inventory", w, false).Info("hello")
	require.NoError(t, closeFn())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"hello"`)
}
