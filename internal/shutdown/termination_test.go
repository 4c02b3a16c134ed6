package shutdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHandlerPanics(t *testing.T) {
	m := New()

	assert.PanicsWithValue(t, "DASHBOARD CUSTOMIZATION FAILED: bad document", func() {
		m.Terminate("bad document")
	})
}

func TestCustomHandlerAndHooks(t *testing.T) {
	m := New()

	var order []string

	m.OnTerminate(func() { order = append(order, "first") })
	m.OnTerminate(func() { order = append(order, "second") })
	m.OnTerminate(nil)
	m.SetHandler(func(reason string) { order = append(order, "handler:"+reason) })
	m.SetHandler(nil)

	assert.NotPanics(t, func() { m.Terminate("boom") })
	assert.Equal(t, []string{"second", "first", "handler:boom"}, order)
}
