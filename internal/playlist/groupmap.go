// Package playlist expands playlist links into member video links via a
// metadata-only yt-dlp probe, and tracks link-to-playlist grouping.
package playlist

// GroupMap maps member links to the title of the playlist that first
// claimed them. Insertion order of links is preserved.
type GroupMap struct {
	order  []string
	groups map[string]string
}

// NewGroupMap returns an empty GroupMap.
func NewGroupMap() *GroupMap {
	return &GroupMap{
		groups: make(map[string]string),
	}
}

// PutIfAbsent assigns link to group unless the link already has a group.
// Reports whether the assignment was made. First group wins.
func (g *GroupMap) PutIfAbsent(link, group string) bool {
	if _, ok := g.groups[link]; ok {
		return false
	}
	g.groups[link] = group
	g.order = append(g.order, link)
	return true
}

// Get returns the group for a link, if any.
func (g *GroupMap) Get(link string) (string, bool) {
	group, ok := g.groups[link]
	return group, ok
}

// Links returns all claimed links in insertion order.
func (g *GroupMap) Links() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Len returns the number of claimed links.
func (g *GroupMap) Len() int {
	return len(g.order)
}
