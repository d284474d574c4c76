package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "
)

type treeNode struct {
	name     string
	isDir    bool
	children []*treeNode
}

func (n *treeNode) child(name string, isDir bool) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			c.isDir = c.isDir || isDir
			return c
		}
	}
	c := &treeNode{name: name, isDir: isDir}
	n.children = append(n.children, c)
	return c
}

func (n *treeNode) insert(p string, isDir bool) {
	parts := strings.Split(path.Clean(p), "/")
	current := n
	for i, part := range parts {
		last := i == len(parts)-1
		current = current.child(part, !last || isDir)
	}
}

// RenderProjectTree renders the generated directories and files of a project
// as a tree rooted at root. Paths are slash-separated and relative.
// Directories sort before files, then alphabetically.
func RenderProjectTree(root string, dirs, files []string) string {
	if len(dirs) == 0 && len(files) == 0 {
		return ""
	}

	top := &treeNode{name: root, isDir: true}
	for _, d := range dirs {
		top.insert(d, true)
	}
	for _, f := range files {
		top.insert(f, false)
	}
	sortTree(top)

	var sb strings.Builder
	sb.WriteString(StyleAction.Render(root + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, top, "")
	return sb.String()
}

func sortTree(n *treeNode) {
	sort.Slice(n.children, func(i, j int) bool {
		if n.children[i].isDir != n.children[j].isDir {
			return n.children[i].isDir
		}
		return n.children[i].name < n.children[j].name
	})
	for _, c := range n.children {
		sortTree(c)
	}
}

func renderChildren(sb *strings.Builder, n *treeNode, prefix string) {
	for i, c := range n.children {
		last := i == len(n.children)-1

		connector, next := treeEdge, treeVert
		if last {
			connector, next = treeLast, treeSpace
		}

		name := c.name
		if c.isDir {
			name = StyleNoun.Render(name + "/")
		}

		sb.WriteString(StyleDim.Render(prefix + connector))
		sb.WriteString(name)
		sb.WriteString("\n")

		renderChildren(sb, c, prefix+next)
	}
}
