package transport_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/DanielPopoola/moolah-go/transport"
	"github.com/stretchr/testify/assert"
)

func TestRestyLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	restyLogger := transport.NewRestyLogger(logger)
	restyLogger.Errorf("attempt %d failed", 2)
	restyLogger.Warnf("plain warning")
	restyLogger.Debugf("retry %s", "scheduled")

	out := buf.String()
	assert.Contains(t, out, `level=ERROR msg="attempt 2 failed" component=resty`)
	assert.Contains(t, out, `level=WARN msg="plain warning" component=resty`)
	assert.Contains(t, out, `level=DEBUG msg="retry scheduled" component=resty`)
}
