package page

import "strings"

// BrokenAnchors returns the in-page hrefs of header links whose target id
// does not exist anywhere in root, in document order.
func BrokenAnchors(root *Node) []string {
	ids := make(map[string]bool)
	root.Walk(func(n *Node) bool {
		if id := n.ID(); !n.IsText() && id != "" {
			ids[id] = true
		}
		return true
	})

	var broken []string
	for _, h := range root.FindAll(ByTag("header")) {
		for _, a := range h.FindAll(ByTag("a")) {
			href, _ := a.Attr("href")
			target, ok := strings.CutPrefix(href, "#")
			if !ok || target == "" {
				continue
			}
			if !ids[target] {
				broken = append(broken, href)
			}
		}
	}
	return broken
}
