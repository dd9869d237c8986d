package completion

import (
	"fmt"
	"strings"
	"testing"
)

func testData() Data {
	return Data{
		Prefix:      "--",
		ShortPrefix: "-",
		Commands:    []string{"help", "remote", "remote add", "remote rm"},
		CommandDescriptions: map[string]string{
			"help":       "Prints this help message.",
			"remote":     "Manage remotes.",
			"remote add": "Add a remote.",
			"remote rm":  "Remove a remote.",
		},
		Flags: []Flag{
			{Name: "verbose", Short: "v", Negatable: true, Description: "Enable verbose output."},
			{Name: "op", Short: "op", TakesValue: true, Values: []string{"+", "-", "*", "/"}, Description: "The operation to perform."},
		},
		CommandFlags: map[string][]Flag{
			"help":   {{Name: "print", Short: "P", TakesValue: true, Values: []string{"brief", "full"}, Description: "How much detail to print."}},
			"remote": {{Name: "force", Negatable: true, Description: "Skip confirmation."}},
		},
	}
}

func TestBashGenerator(t *testing.T) {
	script := (&BashGenerator{}).Generate("calc", testData())

	expectations := []string{
		"function __calc_completion() {",
		"_init_completion -s || return",
		`"@--op") values=('+' '-' '*' '/') ;;`,
		`"help@--print") values=('brief' 'full') ;;`,
		"'--verbose[Enable verbose output.]'",
		"'--no-verbose[Enable verbose output.]'",
		"'-v[Enable verbose output.]'",
		"'--op=[The operation to perform.]'",
		"'-op[The operation to perform.]'",
		"'--print=[How much detail to print.]'",
		"'--no-force[Skip confirmation.]'",
		`COMPREPLY=($(compgen -W "${flags[*]%%[*}" -- "$cur"))`,
		`"") commands=(help remote) ;;`,
		`"remote") commands=(add rm) ;;`,
		"complete -F __calc_completion calc",
	}
	for _, expected := range expectations {
		if !strings.Contains(script, expected) {
			t.Errorf("expected bash script to contain %q", expected)
		}
	}
}

func TestZshGenerator(t *testing.T) {
	script := (&ZshGenerator{}).Generate("calc", testData())

	expectations := []string{
		"#compdef calc",
		"'*--verbose[Enable verbose output.]'",
		"'*--no-verbose[Enable verbose output.]'",
		"'*-v[Enable verbose output.]'",
		"'*--op=-[The operation to perform.]:value:(+ - * /)'",
		"'*-op-[The operation to perform.]:value:(+ - * /)'",
		"'1: :->command'",
		"'*::arg:->args'",
		"'help[Prints this help message.]'",
		"'remote[Manage remotes.]'",
		"'*--print=-[How much detail to print.]:value:(brief full)'",
		"'add[Add a remote.]'",
		`__calc_completion "$@"`,
	}
	for _, expected := range expectations {
		if !strings.Contains(script, expected) {
			t.Errorf("expected zsh script to contain %q", expected)
		}
	}
}

func TestZshGeneratorWithoutCommands(t *testing.T) {
	data := Data{
		Prefix: "--",
		Flags:  []Flag{{Name: "verbose", Description: "Enable verbose output."}},
	}
	script := (&ZshGenerator{}).Generate("tool", data)

	if strings.Contains(script, "->command") {
		t.Error("expected no state machine when the tree has no subcommands")
	}
	if !strings.Contains(script, "'*--verbose[Enable verbose output.]'") {
		t.Error("expected the root options to be declared")
	}
}

func TestFishGenerator(t *testing.T) {
	script := (&FishGenerator{}).Generate("calc", testData())

	expectations := []string{
		"complete -c calc -f -l verbose -s v -d 'Enable verbose output.'",
		"complete -c calc -f -l no-verbose -d 'Enable verbose output.'",
		"complete -c calc -f -l op -o op -x -a '+ - * /' -d 'The operation to perform.'",
		"complete -c calc -f -n '__fish_use_subcommand' -a 'help' -d 'Prints this help message.'",
		"complete -c calc -f -n '__fish_use_subcommand' -a 'remote' -d 'Manage remotes.'",
		"complete -c calc -f -n '__fish_seen_subcommand_from remote' -a 'add' -d 'Add a remote.'",
		"complete -c calc -f -n '__fish_seen_subcommand_from help' -l print -s P -x -a 'brief full' -d 'How much detail to print.'",
		"complete -c calc -f -n '__fish_seen_subcommand_from remote' -l force -d 'Skip confirmation.'",
		"complete -c calc -f -n '__fish_seen_subcommand_from remote' -l no-force -d 'Skip confirmation.'",
	}
	for _, expected := range expectations {
		if !strings.Contains(script, expected) {
			t.Errorf("expected fish script to contain %q", expected)
		}
	}
}

func TestFishGeneratorUnusualPrefixes(t *testing.T) {
	data := Data{
		Prefix:      "/",
		ShortPrefix: "/",
		Flags:       []Flag{{Name: "verbose", Short: "v", Negatable: true, Description: "Enable verbose output."}},
	}
	script := (&FishGenerator{}).Generate("tool", data)

	if !strings.Contains(script, "-a '/verbose /no-verbose /v'") {
		t.Errorf("expected raw token suggestions, got:\n%s", script)
	}
	if strings.Contains(script, "-l verbose") {
		t.Error("slash options must not be declared with -l")
	}
}

func TestPowerShellGenerator(t *testing.T) {
	script := (&PowerShellGenerator{}).Generate("calc", testData())

	expectations := []string{
		"Register-ArgumentCompleter -Native -CommandName calc -ScriptBlock {",
		`switch -CaseSensitive ("$cmd@" + $Matches[1]) {`,
		"'@--op=' {",
		"[CompletionResult]::new('--op=+', '+', [CompletionResultType]::ParameterValue, 'The operation to perform.')",
		"'help@--print=' {",
		"[CompletionResult]::new('--print=brief', 'brief', [CompletionResultType]::ParameterValue, 'How much detail to print.')",
		"switch -CaseSensitive ($cmd) {",
		"[CompletionResult]::new('--verbose', 'verbose', [CompletionResultType]::ParameterName, 'Enable verbose output.')",
		"[CompletionResult]::new('--no-verbose', 'no-verbose', [CompletionResultType]::ParameterName, 'Enable verbose output.')",
		"[CompletionResult]::new('--op=', 'op', [CompletionResultType]::ParameterName, 'The operation to perform.')",
		"[CompletionResult]::new('help', 'help', [CompletionResultType]::Command, 'Prints this help message.')",
		"[CompletionResult]::new('add', 'add', [CompletionResultType]::Command, 'Add a remote.')",
	}
	for _, expected := range expectations {
		if !strings.Contains(script, expected) {
			t.Errorf("expected powershell script to contain %q", expected)
		}
	}
}

func TestPowerShellEscapesQuotes(t *testing.T) {
	data := Data{
		Prefix: "--",
		Flags:  []Flag{{Name: "who", Description: "Sets the user's name."}},
	}
	script := (&PowerShellGenerator{}).Generate("tool", data)

	if !strings.Contains(script, "'Sets the user''s name.'") {
		t.Error("expected single quotes to be doubled in descriptions")
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path   string
		parent string
		name   string
	}{
		{"help", "", "help"},
		{"remote add", "remote", "add"},
		{"a b c", "a b", "c"},
	}
	for _, tt := range tests {
		parent, name := splitPath(tt.path)
		if parent != tt.parent || name != tt.name {
			t.Errorf("splitPath(%q) = (%q, %q), want (%q, %q)",
				tt.path, parent, name, tt.parent, tt.name)
		}
	}
}

func TestChildCommands(t *testing.T) {
	order, children := childCommands(testData())

	wantOrder := []string{"", "remote"}
	if len(order) != len(wantOrder) {
		t.Fatalf("order = %v, want %v", order, wantOrder)
	}
	for i := range wantOrder {
		if order[i] != wantOrder[i] {
			t.Fatalf("order = %v, want %v", order, wantOrder)
		}
	}
	if got := strings.Join(children[""], ","); got != "help,remote" {
		t.Errorf("children of root = %q, want %q", got, "help,remote")
	}
	if got := strings.Join(children["remote"], ","); got != "add,rm" {
		t.Errorf("children of remote = %q, want %q", got, "add,rm")
	}
}

func TestGetGenerator(t *testing.T) {
	tests := []struct {
		shell    string
		expected Generator
	}{
		{"bash", &BashGenerator{}},
		{"zsh", &ZshGenerator{}},
		{"fish", &FishGenerator{}},
		{"powershell", &PowerShellGenerator{}},
		{"unknown", &BashGenerator{}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			gen := GetGenerator(tt.shell)
			if gen == nil {
				t.Fatalf("GetGenerator(%q) returned nil", tt.shell)
			}
			if fmt.Sprintf("%T", gen) != fmt.Sprintf("%T", tt.expected) {
				t.Errorf("GetGenerator(%q) = %T, want %T", tt.shell, gen, tt.expected)
			}
		})
	}
}
