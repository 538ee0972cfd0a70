package source

// Candidate represents one raw catalog entry prior to title extraction.
type Candidate struct {
	// Freeform release title exactly as the catalog advertises it.
	Title string `json:"title"`
	// Opaque locator consumed by the download stage.
	Link string `json:"link"`

	Source Source `json:"-"`
}

// String returns the raw title for display.
func (c *Candidate) String() string {
	return c.Title
}
