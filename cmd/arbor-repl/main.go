package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Afessler1998/arbor"
)

// text is the value type the REPL drives the container with.
type text string

func (v text) EncodeText() string              { return string(v) }
func (text) DecodeText(s string) (text, error) { return text(s), nil }
func (v text) Equal(other text) bool           { return v == other }

// REPL holds the state of the interactive session
type REPL struct {
	tree   *arbor.Tree[text]
	reader *bufio.Reader
}

func main() {
	fmt.Println("Arbor REPL - Interactive Tree Container Demo")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	tree, err := arbor.New[text]()
	if err != nil {
		fmt.Printf("Error creating tree: %v\n", err)
		os.Exit(1)
	}

	repl := &REPL{
		tree:   tree,
		reader: bufio.NewReader(os.Stdin),
	}

	// Main loop
	for {
		fmt.Print("arbor> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "reset":
		r.cmdReset()

	case "root":
		r.cmdRoot(args)

	case "append":
		r.cmdAppend(args)

	case "remove":
		r.cmdRemove(args)

	case "children":
		r.cmdChildren(args)

	case "value":
		r.cmdValue(args)

	case "parent":
		r.cmdParent(args)

	case "rootid":
		r.cmdRootID()

	case "len":
		fmt.Printf("Live nodes: %d\n", r.tree.Len())

	case "linear":
		fmt.Println(r.tree.String())

	case "dump":
		r.cmdDump()

	case "load":
		r.cmdLoad()

	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

MUTATION:
  root <text>             Set the root node's value (empty tree only)
  append <parent> <text>  Append a child under the given node id
  remove <id>             Remove a node and its entire subtree
  reset                   Replace the tree with a fresh empty one

INSPECTION:
  rootid                  Show the root node id
  children <id>           List a node's children ids in order
  value <id>              Show a node's value
  parent <id>             Show a node's parent id
  len                     Show the number of live nodes
  linear                  Show the linearized token sequence

SERIALIZATION:
  dump                    Print the serialized text form
  load                    Read serialized lines (end with a lone '.')
                          and replace the tree with the result

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL
`
	fmt.Println(help)
}

func (r *REPL) cmdReset() {
	tree, err := arbor.New[text]()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.tree = tree
	fmt.Println("Tree reset")
}

func (r *REPL) cmdRoot(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: root <text>")
		return
	}

	id, err := r.tree.SetRoot(text(strings.Join(args, " ")))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Root set, id %d\n", id)
}

func (r *REPL) cmdAppend(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: append <parent> <text>")
		return
	}

	parent, ok := parseID(args[0])
	if !ok {
		return
	}

	id, err := r.tree.Append(parent, text(strings.Join(args[1:], " ")))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Appended, id %d\n", id)
}

func (r *REPL) cmdRemove(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: remove <id>")
		return
	}

	id, ok := parseID(args[0])
	if !ok {
		return
	}

	if err := r.tree.Remove(id); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Removed node %d and its subtree\n", id)
}

func (r *REPL) cmdChildren(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: children <id>")
		return
	}

	id, ok := parseID(args[0])
	if !ok {
		return
	}

	children, err := r.tree.Children(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(children) == 0 {
		fmt.Println("(no children)")
		return
	}
	for _, c := range children {
		fmt.Printf("  %d: %s\n", c, r.tree.MustValue(c))
	}
}

func (r *REPL) cmdValue(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: value <id>")
		return
	}

	id, ok := parseID(args[0])
	if !ok {
		return
	}

	v, err := r.tree.Value(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("%q\n", string(v))
}

func (r *REPL) cmdParent(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: parent <id>")
		return
	}

	id, ok := parseID(args[0])
	if !ok {
		return
	}

	parent, err := r.tree.Parent(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if parent == arbor.NoNode {
		fmt.Println("(root, no parent)")
		return
	}
	fmt.Printf("%d\n", parent)
}

func (r *REPL) cmdRootID() {
	id := r.tree.RootID()
	if id == arbor.NoNode {
		fmt.Println("(empty tree)")
		return
	}
	fmt.Printf("%d\n", id)
}

func (r *REPL) cmdDump() {
	serialized := r.tree.Serialize()
	if serialized == "" {
		fmt.Println("(empty tree)")
		return
	}
	fmt.Print(serialized)
}

func (r *REPL) cmdLoad() {
	fmt.Println("Enter serialized lines, end with a lone '.'")

	var b strings.Builder
	for {
		line, err := r.reader.ReadString('\n')
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			return
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "." {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	tree, err := arbor.Deserialize[text](b.String())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	r.tree = tree
	fmt.Printf("Loaded tree with %d nodes\n", tree.Len())
}

func parseID(s string) (arbor.NodeID, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		fmt.Printf("Invalid node id: %s\n", s)
		return arbor.NoNode, false
	}
	return arbor.NodeID(n), true
}
