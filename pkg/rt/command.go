package rt

import (
	"src.retk.dev/pkg/ident"
	"src.retk.dev/pkg/ui"
)

// Command declares a command that a host can show in a menu and bind to key.
// f is called when the command is invoked. key may be nil.
func Command(child Node, name string, key *ui.Key, f func(c *Context)) Node {
	return &commandNode{wrap{child}, []Cmd{{name, key, f}}}
}

// Cmd is an entry of CommandGroup.
type Cmd struct {
	Name string
	Key  *ui.Key
	Func func(c *Context)
}

// CommandGroup declares several commands at once.
func CommandGroup(child Node, cmds ...Cmd) Node {
	return &commandNode{wrap{child}, cmds}
}

type commandNode struct {
	wrap
	cmds []Cmd
}

func (n *commandNode) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	if inv, ok := e.(Invoked); ok {
		for _, cmd := range n.cmds {
			if cmd.Name == inv.Name {
				cmd.Func(c)
			}
		}
	}
	n.wrap.Process(e, p, c, actions)
}

func (n *commandNode) Commands(p *ident.Path, c *Context, cmds *[]CommandInfo) {
	n.wrap.Commands(p, c, cmds)
	for _, cmd := range n.cmds {
		*cmds = append(*cmds, CommandInfo{cmd.Name, cmd.Key})
	}
}

// Handle intercepts the actions of type A emitted by child, replacing each
// with the result of f. When f returns nil or NoAction, the action is
// dropped. Actions of other types pass through.
func Handle[A any](child Node, f func(c *Context, a A) Action) Node {
	return &handleNode[A]{wrap{child}, f}
}

type handleNode[A any] struct {
	wrap
	f func(*Context, A) Action
}

func (n *handleNode[A]) Process(e Event, p *ident.Path, c *Context, actions *[]Action) {
	var emitted []Action
	n.wrap.Process(e, p, c, &emitted)
	for _, a := range emitted {
		if typed, ok := a.(A); ok {
			if r := n.f(c, typed); !isUnit(r) {
				*actions = append(*actions, r)
			}
			continue
		}
		*actions = append(*actions, a)
	}
}
