package doc

// AttrString safely reads a string attribute
func AttrString(attrs map[string]interface{}, key string) string {
	if attrs == nil {
		return ""
	}
	val, ok := attrs[key]
	if !ok {
		return ""
	}
	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// AttrInt safely reads an integer attribute.
// Numbers decoded from JSON arrive as float64.
func AttrInt(attrs map[string]interface{}, key string) int {
	if attrs == nil {
		return 0
	}
	switch v := attrs[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// AttrBool safely reads a boolean attribute
func AttrBool(attrs map[string]interface{}, key string) bool {
	if attrs == nil {
		return false
	}
	b, ok := attrs[key].(bool)
	if !ok {
		return false
	}
	return b
}

// MaxHeadingLevel is the deepest heading the editor produces
const MaxHeadingLevel = 3

// Level returns a heading's level. Missing or out-of-range levels read as 1.
func (n *Node) Level() int {
	switch v := n.Attrs["level"].(type) {
	case float64:
		if v >= 1 && v <= MaxHeadingLevel {
			return int(v)
		}
	case int:
		if v >= 1 && v <= MaxHeadingLevel {
			return v
		}
	}
	return 1
}

// Checked reports the checked state of a task item
func (n *Node) Checked() bool {
	return AttrBool(n.Attrs, "checked")
}
