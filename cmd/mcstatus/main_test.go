package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gstoney/mcwire/status"
)

func TestPrintResult(t *testing.T) {
	r, err := status.NewResponse("A Minecraft Server", 20, 2)
	assert.NoError(t, err)
	r.Players.Sample = []status.Player{{Name: "Steve", ID: "8667ba71-b85a-4004-af54-457a9734eed7"}}

	var buf bytes.Buffer
	printResult(&buf, "example.org:25565", status.Result{Response: r, Latency: 12300 * time.Microsecond})

	out := buf.String()
	assert.Contains(t, out, "motd:    A Minecraft Server")
	assert.Contains(t, out, "players: 2/20")
	assert.Contains(t, out, "Steve (8667ba71")
	assert.Contains(t, out, "latency: 12ms")
}

func TestRootCmdRejectsExtraArgs(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"a:1", "b:2"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
