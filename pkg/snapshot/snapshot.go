package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UpdateEnv rewrites every snapshot that is validated when set to 1
const UpdateEnv = "UPDATE_SNAPSHOTS"

// Filename returns the snapshot file for the test
func Filename(t *testing.T) string {
	return filepath.Join("testdata", "snapshots", strings.ReplaceAll(t.Name(), "/", "_")+".json")
}

// Validate compares the JSON encoding of obj with the test's snapshot file
// A missing snapshot is written and the check passes
func Validate(t *testing.T, obj interface{}, msgAndArgs ...interface{}) {
	t.Helper()

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	require.NoError(t, err)

	filename := Filename(t)
	expects, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv(UpdateEnv) == "1" {
		write(t, filename, objJSON)
		return
	}

	require.NoError(t, err)

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s, run with %s=1 to update", filename, UpdateEnv)
	}
}

func write(t *testing.T, filename string, data []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0755))
	require.NoError(t, os.WriteFile(filename, append(data, '\n'), 0644))
}
