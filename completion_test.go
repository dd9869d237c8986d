package argue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_CompletionData(t *testing.T) {
	app := New("app", "An app.")
	NewFlagOption(app, "verbose", "v", "Enable verbose output.", false)
	NewChoiceOption(app, "color", "", "WHEN", "When to color output.",
		"auto", "always", "never").WithDefault(0)
	NewHelpCommand(app)
	remote := app.Subcommand("remote", "Manage remotes.")
	NewFlagOption(remote, "force", "", "Skip confirmation.", false)
	remote.Subcommand("add", "Add a remote.")

	data := app.CompletionData()

	assert.Equal(t, "--", data.Prefix)
	assert.Equal(t, "-", data.ShortPrefix)
	assert.Equal(t, []string{"help", "remote", "remote add"}, data.Commands,
		"command paths should come out in declaration order, parents first")
	assert.Equal(t, "Manage remotes.", data.CommandDescriptions["remote"])
	assert.Equal(t, "Add a remote.", data.CommandDescriptions["remote add"])

	require.Len(t, data.Flags, 2)
	verbose := data.Flags[0]
	assert.Equal(t, "verbose", verbose.Name)
	assert.Equal(t, "v", verbose.Short)
	assert.False(t, verbose.TakesValue, "flags take no value")
	assert.True(t, verbose.Negatable, "flags accept the --no- form")
	color := data.Flags[1]
	assert.True(t, color.TakesValue)
	assert.Equal(t, []string{"auto", "always", "never"}, color.Values,
		"choice options should offer their choices as value completions")
	assert.False(t, color.Negatable)

	require.Len(t, data.CommandFlags["remote"], 1)
	assert.Equal(t, "force", data.CommandFlags["remote"][0].Name)
	assert.NotContains(t, data.CommandFlags, "remote add",
		"commands without options should have no flag entry")
}

func TestParser_GenerateCompletion(t *testing.T) {
	app := New("app", "")
	NewFlagOption(app, "verbose", "v", "Enable verbose output.", false)
	app.Subcommand("run", "Runs things.")

	script := app.GenerateCompletion("bash", "myapp")
	assert.True(t, strings.Contains(script, "complete -F __myapp_completion myapp"),
		"the script should register for the given program name")
	assert.Contains(t, script, "--verbose")

	assert.Contains(t, app.GenerateCompletion("fish", "myapp"), "complete -c myapp")
	assert.Contains(t, app.GenerateCompletion("nonsense", "myapp"), "complete -F",
		"unknown shells fall back to bash")
}
