package domain

// Catalog is the ordered set of assets discovered for one build.
type Catalog struct {
	Root       string
	Markup     []SourceAsset
	Stylesheet *SourceAsset
	Scripts    []SourceAsset
}

// Assets returns every asset in artifact order: markup sorted by name, the stylesheet,
// then scripts in their declared load order.
func (c *Catalog) Assets() []SourceAsset {
	n := len(c.Markup) + len(c.Scripts)
	if c.Stylesheet != nil {
		n++
	}
	assets := make([]SourceAsset, 0, n)
	assets = append(assets, c.Markup...)
	if c.Stylesheet != nil {
		assets = append(assets, *c.Stylesheet)
	}
	return append(assets, c.Scripts...)
}

// Paths returns the logical paths of Assets in the same order.
func (c *Catalog) Paths() []string {
	assets := c.Assets()
	paths := make([]string, len(assets))
	for i, a := range assets {
		paths[i] = a.Path
	}
	return paths
}

// ReferencePaths returns the paths that markup may reference: the stylesheet and scripts.
func (c *Catalog) ReferencePaths() []string {
	paths := make([]string, 0, len(c.Scripts)+1)
	if c.Stylesheet != nil {
		paths = append(paths, c.Stylesheet.Path)
	}
	for _, s := range c.Scripts {
		paths = append(paths, s.Path)
	}
	return paths
}
