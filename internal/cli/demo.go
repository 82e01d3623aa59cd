// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"fmt"

	"github.com/gogpu/ui/env"
	"github.com/gogpu/ui/layout"
	"github.com/gogpu/ui/view"
)

// demoState holds the values the demo view binds to.
type demoState struct {
	Volume   *view.Var[float64]
	Enabled  *view.Var[bool]
	Count    *view.Var[float64]
	Name     *view.Var[string]
	Progress *view.Var[float64]
}

func newDemoState() *demoState {
	return &demoState{
		Volume:   view.NewVar(40.0),
		Enabled:  view.NewVar(true),
		Count:    view.NewVar(3.0),
		Name:     view.NewVar(""),
		Progress: view.NewVar(0.6),
	}
}

// demoView is the sample screen every command renders.
type demoView struct {
	state *demoState
}

func (d demoView) Body(e *env.Environment) view.View {
	s := d.state

	title := view.Text("gogpu/ui")
	title.Style.Size = 2 * e.FontSize(env.TextStyle{})

	greeting := view.TextFrom(view.Func[string](func() string {
		if n := s.Name.Get(); n != "" {
			return "Hello, " + n
		}
		return "Hello"
	}))

	var cells []view.View
	for i := 1; i <= 6; i++ {
		cells = append(cells, view.Text(fmt.Sprintf("cell %d", i)))
	}

	return view.Padding(layout.Insets(16),
		view.VStack(8, layout.Leading,
			title,
			view.Divider(),
			greeting,
			view.Slider(s.Volume, 0, 100),
			view.Toggle("Enabled", s.Enabled),
			view.Stepper("Count", s.Count, 1),
			view.TextField(s.Name, "Your name"),
			view.Progress(s.Progress),
			view.Grid(3, 4, cells...),
		),
	)
}
