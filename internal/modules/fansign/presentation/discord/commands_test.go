package discord

import "testing"

func TestCommands(t *testing.T) {
	commands := Commands()

	byName := make(map[string]int, len(commands))
	for _, cmd := range commands {
		byName[cmd.Name] = len(cmd.Options)
	}

	want := map[string]int{
		CommandFansign: 3,
		CommandPremgen: 3,
		CommandBulkgen: 12,
	}
	for name, n := range want {
		got, ok := byName[name]
		if !ok {
			t.Errorf("missing command %s", name)
			continue
		}
		if got != n {
			t.Errorf("%s: expected %d options, got %d", name, n, got)
		}
	}
}

func TestBulkOptions_OnlyFirstSlotRequired(t *testing.T) {
	for _, opt := range bulkOptions()[2:] {
		if opt.Required != (opt.Name == "style1") {
			t.Errorf("%s: required = %v", opt.Name, opt.Required)
		}
		if !opt.Autocomplete {
			t.Errorf("%s: expected autocomplete", opt.Name)
		}
	}
}
