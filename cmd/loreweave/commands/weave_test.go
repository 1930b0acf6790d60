package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/weave"
)

func TestRunErrorCleanRun(t *testing.T) {
	result := &weave.Result{
		Documents: []weave.Document{{Entity: "Alpha"}, {Entity: "Beta"}},
	}
	assert.NoError(t, runError(result))
}

// A run with skipped entities must surface as a command error, so the
// process exits non-zero even though templates were written.
func TestRunErrorPartialFailure(t *testing.T) {
	result := &weave.Result{
		Documents: []weave.Document{{Entity: "Alpha"}},
		Failures: []weave.Failure{
			{Entity: "Broken", Err: errors.ErrResolution},
			{Entity: "AlsoBroken", Err: errors.ErrResolution},
		},
	}

	err := runError(result)
	assert.EqualError(t, err, "2 of 3 entities failed")
}

func TestPick(t *testing.T) {
	assert.Equal(t, "json", pick("json", "yaml"))
	assert.Equal(t, "yaml", pick("", "yaml"))
}
