package orchestra

import (
	"fmt"

	"github.com/srevinsaju/menagerie/pkg/ui"
)

// List writes the name and title of every registered demo.
func List(cfg Config) error {
	m, _, err := NewContextWithMenagerie(cfg)
	if err != nil {
		return err
	}
	p := &printer{w: m.Output()}
	for _, demo := range Registered() {
		p.println(ui.Yellow(fmt.Sprintf("%-10s", demo.Name())), ui.Grey(demo.Title()))
	}
	return p.err
}
