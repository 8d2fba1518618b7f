package server

import (
	"encoding/json"
	"testing"

	"dvap/calculator"
	"dvap/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildData(t *testing.T) {
	c := calculator.NewCalculatorWithCloud()
	h := NewHub()
	h.c = c
	data := h.c.BuildData()
	require.NotNil(t, data)
	assert.Equal(t, 0, data.Count)
}

func TestHandleRequestEnv(t *testing.T) {
	h := NewHub()
	h.c = calculator.NewCalculatorWithCloud()
	go h.handleRequest()

	content, err := json.Marshal(model.Env{
		Fluid:            "dodecane",
		GasTemperature:   750.0,
		GasVelocity:      3.0,
		ShearRate:        50.0,
		StartTemperature: 320.0,
		Diameter:         5e-5,
	})
	require.NoError(t, err)
	h.msg <- model.Msg{Type: "env", Content: string(content)}

	reply := <-h.envSet
	assert.Equal(t, "envSet", reply.Type)
}

func TestHandleRequestTail(t *testing.T) {
	h := NewHub()
	h.c = calculator.NewCalculatorWithCloud()
	go h.handleRequest()

	h.msg <- model.Msg{Type: "tail"}
	reply := <-h.tailSet
	assert.Equal(t, "tailSet", reply.Type)
}
