package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/mesocycle/internal/mesocycle/plan"
	"github.com/2beens/mesocycle/internal/mesocycle/progression"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestPrintSchedule(t *testing.T) {
	var buf bytes.Buffer
	printSchedule(&buf, progression.NewSchedule(4).Overview(2))

	assert.Equal(t, ""+
		"week 1             RPE 7 / 7\n"+
		"week 2             RPE 8 / 9\n"+
		"week 3             RPE 8 / 9\n"+
		"week 4 (deload)    RPE 7 / 7\n",
		buf.String(),
	)
}

func TestPrintPlan_ExamplePlanFile(t *testing.T) {
	p, warnings, err := plan.LoadFile("../../plans/upper_lower.yaml")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	var buf bytes.Buffer
	printPlan(&buf, p)
	out := buf.String()

	assert.Contains(t, out, "UPPER / LOWER")
	assert.Contains(t, out, "Weeks: 5 (last one is the deload)")
	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "Day 2")
	assert.Contains(t, out, "Bench Press")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Day 1")), bytes.Index(buf.Bytes(), []byte("Day 2")))
}

func TestScheduleCmd_InvalidFlags(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"schedule", "--weeks", "0"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--weeks must be positive")
}

func TestScheduleCmd(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"schedule", "--weeks", "3", "--sets", "1"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, ""+
		"week 1             RPE 7\n"+
		"week 2             RPE 9\n"+
		"week 3 (deload)    RPE 7\n",
		out.String(),
	)
}
