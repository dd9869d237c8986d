// Package completion generates shell completion scripts from a flattened
// description of a command tree. Generators exist for bash, zsh, fish and
// PowerShell; all of them complete subcommand names, option names and,
// where an option has a finite value set, the value part of the
// "--name=value" form.
package completion

// Data is a flattened snapshot of a command tree, carrying everything the
// script generators need. It is usually produced by a parser, but can be
// built by hand as well.
type Data struct {
	// Prefix and ShortPrefix are the option prefixes the tree was built
	// with, conventionally "--" and "-". ShortPrefix may be empty when
	// short option forms are disabled.
	Prefix      string
	ShortPrefix string

	// Commands lists every subcommand path in declaration order, path
	// parts joined by single spaces ("help", "remote", "remote add").
	// Parents always appear before their children.
	Commands []string

	// CommandDescriptions maps a command path to its description. Paths
	// without a description have no entry.
	CommandDescriptions map[string]string

	// Flags holds the options of the root command.
	Flags []Flag

	// CommandFlags maps a command path to the options declared on that
	// subcommand. Options are not inherited, each path lists only its own.
	CommandFlags map[string][]Flag
}

// Flag describes a single option for completion purposes. Names are
// stored without their prefixes so generators can assemble the full
// tokens from the prefixes in Data.
type Flag struct {
	// Name is the long name, e.g. "print".
	Name string

	// Short is the short name, e.g. "P". Empty when the option has none.
	Short string

	// TakesValue reports whether the long form is written "--name=value".
	TakesValue bool

	// Values lists the values worth suggesting after "--name=" when the
	// option accepts a finite set, such as a choice between modes.
	Values []string

	// Negatable reports whether the option also accepts the "--no-name"
	// form.
	Negatable bool

	// Description is the option's help description.
	Description string
}
