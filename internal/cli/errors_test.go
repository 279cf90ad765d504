package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsdbkit/tsmaint"
)

func TestPipelineError_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"missing resource", fmt.Errorf("%w: reading template x: no such file", tsmaint.ErrMissingResource), ExitMissingResource},
		{"malformed manifest", fmt.Errorf("m.json: %w: bad syntax", tsmaint.ErrMalformedManifest), ExitMalformedManifest},
		{"write failure", fmt.Errorf("%w: writing out.sql: permission denied", tsmaint.ErrWriteFailure), ExitWriteFailure},
		{"unclassified", errors.New("something else"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitErr := PipelineError("generating migration", tt.err)
			assert.Equal(t, tt.code, exitErr.Code)
			assert.ErrorIs(t, exitErr, tt.err)
			assert.Contains(t, exitErr.Error(), "generating migration")
		})
	}
}

func TestExitError_WithoutCause(t *testing.T) {
	exitErr := ConfigError("loading configuration", nil)
	assert.Equal(t, ExitConfig, exitErr.Code)
	assert.Equal(t, "loading configuration", exitErr.Error())
}
