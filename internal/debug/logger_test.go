package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitGatesOutput(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() { Init(false, nil) })

	Init(false, &buf)
	Debug("hidden", "k", 1)
	Dump("hidden dump", struct{ A int }{A: 1})
	assert.Empty(t, buf.String())
	assert.False(t, Enabled())

	Init(true, &buf)
	Debug("shown", "k", 2)
	Dump("dumped", struct{ Field string }{Field: "value"})

	out := buf.String()
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "k=2")
	assert.Contains(t, out, "msg=dumped")
	assert.Contains(t, out, "Field")
	assert.True(t, Enabled())
}
