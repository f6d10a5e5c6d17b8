package funcbox_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/func_ive_go/funcbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// freshPayload is only ever stored by TestSetLogger_TableBuild.
type freshPayload struct{}

func (freshPayload) Call() int { return 7 }

type leakyPayload struct{}

func (leakyPayload) Call() int { return 0 }

func (leakyPayload) Close() error { return errors.New("disk gone") }

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	funcbox.SetLogger(zap.New(core))
	t.Cleanup(func() { funcbox.SetLogger(nil) })
	return logs
}

func TestSetLogger_TableBuild(t *testing.T) {
	logs := observe(t)

	f := funcbox.From0[int](freshPayload{})
	g := funcbox.From0[int](freshPayload{})
	assert.Equal(t, 7, f.MustCall())
	assert.Equal(t, 7, g.MustCall())

	built := logs.FilterMessage("built dispatch table").Filter(func(e observer.LoggedEntry) bool {
		key, _ := e.ContextMap()["key"].(string)
		return strings.Contains(key, "freshPayload")
	}).All()
	require.Len(t, built, 1)
	assert.NotEmpty(t, built[0].ContextMap()["tableId"])
}

func TestSetLogger_CloseFailure(t *testing.T) {
	logs := observe(t)

	f := funcbox.From0[int](leakyPayload{})
	f.Close()

	warned := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage("failed to close payload").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "disk gone", warned[0].ContextMap()["error"])
	assert.False(t, f.Valid())
}
