package gosurf3d

// Clist is a circular list of names, used to cycle through surfaces.
type Clist struct {
	items []string
	count int
}

func NewClist(items []string) *Clist {
	return &Clist{items: items}
}

// Seek moves the cursor to item, if present.
func (c *Clist) Seek(item string) {
	for i, it := range c.items {
		if it == item {
			c.count = i
			return
		}
	}
}

func (c *Clist) Current() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[c.count]
}

func (c *Clist) Next() string {
	if len(c.items) == 0 {
		return ""
	}
	c.count++
	if c.count >= len(c.items) {
		c.count = 0
	}
	return c.items[c.count]
}

func (c *Clist) Back() string {
	if len(c.items) == 0 {
		return ""
	}
	c.count--
	if c.count < 0 {
		c.count = len(c.items) - 1
	}
	return c.items[c.count]
}
