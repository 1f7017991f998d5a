package main

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestAddInstanceFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var instName, dataDir string
	addInstanceFlags(flags, &instName, &dataDir)

	inst := flags.Lookup("inst")
	assert.NotNil(t, inst)
	assert.Equal(t, "i", inst.Shorthand)

	data := flags.Lookup("data")
	assert.NotNil(t, data)
	assert.Equal(t, "data", data.DefValue)

	assert.NoError(t, flags.Parse([]string{"--inst", "berlin52"}))
	assert.Equal(t, "berlin52", instName)
	assert.Equal(t, "data", dataDir)
}
