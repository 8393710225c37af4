package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linerelay/tools"
)

type stubComputer struct {
	out string
	err error
}

func (s stubComputer) Compute(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

func TestGenerateEmitsSendTask(t *testing.T) {
	tasks := Generate(context.Background(), stubComputer{out: "hi back"}, "u1", "hello")
	require.Len(t, tasks, 1)
	assert.Equal(t, "/tasks/send", tasks[0].Path)
	assert.Equal(t, map[string]string{"to": "u1", "output": "hi back"}, tasks[0].Params)
}

func TestGenerateComputerErrorMapsToEmptySentinel(t *testing.T) {
	tasks := Generate(context.Background(), stubComputer{err: fmt.Errorf("lookup down")}, "u1", "hello")
	require.Len(t, tasks, 1)
	assert.Equal(t, "", tasks[0].Params["output"])
}

func TestGenerateEchoPassesTextThrough(t *testing.T) {
	tasks := Generate(context.Background(), tools.EchoComputer{}, "u1", "")
	require.Len(t, tasks, 1)
	// texto ausente vira sentinel vazio, que downstream transforma em stamp
	assert.Equal(t, "", tasks[0].Params["output"])
}
