package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateCountsFrames(t *testing.T) {
	s := New()

	s.Update()
	s.Update()
	s.Update()

	snap := s.Snapshot()
	assert.Equal(t, uint64(3), snap.FramesDrawn)
	assert.GreaterOrEqual(t, snap.Uptime, 0.0)
}

func TestRecordBuild(t *testing.T) {
	s := New()

	s.RecordBuild(nil)
	s.RecordBuild(errors.New("compile failed"))

	snap := s.Snapshot()
	assert.Equal(t, uint64(2), snap.ShaderBuilds)
	assert.Equal(t, uint64(1), snap.ShaderBuildFailures)
}

func TestSetWsClients(t *testing.T) {
	s := New()
	s.SetWsClients(2)
	assert.Equal(t, 2, s.Snapshot().WsClients)
}
