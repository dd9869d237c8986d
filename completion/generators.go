package completion

// Generator renders a completion script for one shell.
type Generator interface {
	Generate(programName string, data Data) string
}

// GetGenerator returns the generator for the named shell. Unknown names
// fall back to bash.
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	case "bash":
		fallthrough
	default:
		return &BashGenerator{}
	}
}
