package fractree

// Command is an interactive control shared by the hosts. Hosts map their
// own keys onto command names.
type Command struct {
	Name  string
	Apply func(o *Orchestrator)
}

var commands = []Command{
	{"animate", func(o *Orchestrator) {
		o.Edit(func(c *Config) { c.Animate = !c.Animate })
	}},
	{"debug", func(o *Orchestrator) {
		o.Edit(func(c *Config) { c.Debug = !c.Debug })
	}},
	{"shapes", func(o *Orchestrator) {
		o.Edit(func(c *Config) { c.UseMotifs = !c.UseMotifs })
	}},
	{"deeper", func(o *Orchestrator) {
		o.Edit(func(c *Config) { c.MaxDepth = clampDepth(c.MaxDepth + 1) })
	}},
	{"shallower", func(o *Orchestrator) {
		o.Edit(func(c *Config) { c.MaxDepth = clampDepth(c.MaxDepth - 1) })
	}},
	{"clear", (*Orchestrator).ClearAll},
	{"reseed", (*Orchestrator).Reseed},
}

// Commands returns every interactive command.
func Commands() []Command {
	return append([]Command(nil), commands...)
}

// LookupCommand returns the command called name.
func LookupCommand(name string) (Command, bool) {
	for _, c := range commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}
