package filetree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Node is one entry in the project tree. Directory children are loaded
// lazily on first expansion.
type Node struct {
	Name     string
	Path     string
	IsDir    bool
	Depth    int
	Parent   *Node
	Children []*Node

	expanded bool
	loaded   bool
}

// Expanded reports whether a directory node is currently open.
func (n *Node) Expanded() bool {
	return n.expanded
}

// loadChildren reads the directory entries for n, sorted directories
// first then files, both alphabetically.
func (n *Node) loadChildren(showHidden bool) error {
	entries, err := os.ReadDir(n.Path)
	if err != nil {
		return err
	}

	n.Children = n.Children[:0]
	for _, entry := range entries {
		if !showHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		n.Children = append(n.Children, &Node{
			Name:   entry.Name(),
			Path:   filepath.Join(n.Path, entry.Name()),
			IsDir:  entry.IsDir(),
			Depth:  n.Depth + 1,
			Parent: n,
		})
	}

	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	n.loaded = true
	return nil
}

// flatten appends n's visible subtree to out in display order.
func (n *Node) flatten(out []*Node) []*Node {
	out = append(out, n)
	if n.IsDir && n.expanded {
		for _, child := range n.Children {
			out = child.flatten(out)
		}
	}
	return out
}
