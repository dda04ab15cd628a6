// Package nrs implements a hierarchical name resolution system for
// content-addressed storage networks.
//
// NRS maps human-readable, dot-structured public names ("blog.dave") to
// versioned content locators, so applications can reference mutable
// network content through stable nicknames instead of raw addresses.
// Each top name ("dave") owns one Map associating subname paths with
// locators; the empty path is the default entry for the top name itself.
//
// Basic usage (in-memory map only):
//
//	m := nrs.NewMap()
//
//	// Register links
//	m.Update("dave", defaultLink)
//	m.Update("blog.dave", blogLink)
//
//	// Resolve names back to links
//	link, _ := m.ResolveFullName("blog.dave")
//	link, _ = m.DefaultLink()
//
//	// Remove a subname
//	prev, _ := m.Remove("blog")
//
// Links to versionable content (file containers, NRS containers,
// registers) must carry an explicit version hash, so a registered name
// keeps pointing at the same snapshot even as the target evolves.
//
// With local persistence and remote sync:
//
//	s, _ := nrs.Open("dave", nrs.WithRemote("ttl.sh/myorg/nrs"))
//	s.Add("blog.dave", blogLink)
//	s.Commit(ctx)
//	s.Push(ctx)
package nrs
