package style

// Initial values of the properties known to the style engines.
//
// Values "default" have the following semantics:
// Treat this as an inherent UA default, which should not be instantiated in memory,
// but rather will be treated implicitely by rendering code.
var initialValues = map[string]Property{
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-color":           "default",
	"border-left-color":          "default",
	"border-right-color":         "default",
	"border-bottom-color":        "default",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-style":           "none",
	"border-left-style":          "none",
	"border-right-style":         "none",
	"border-bottom-style":        "none",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-left-radius":  "0",
	"border-bottom-right-radius": "0",
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "none",
	"min-height":                 "none",
	"max-width":                  "none",
	"max-height":                 "none",
	"top":                        "0",
	"right":                      "0",
	"bottom":                     "0",
	"left":                       "0",
	"display":                    "inline",
	"float":                      "none",
	"visibility":                 "visible",
	"position":                   "static",
	"flow-from":                  "none",
	"flow-into":                  "none",
	"color":                      "default",
	"background-color":           "default",
	"direction":                  "ltr",
	"white-space":                "normal",
	"word-spacing":               "normal",
	"letter-spacing":             "normal",
	"word-break":                 "normal",
	"overflow-wrap":              "normal",
	"hyphens":                    "manual",
	"line-height":                "normal",
	"text-align":                 "start",
	"text-indent":                "0",
	"text-transform":             "none",
	"font-family":                "serif",
	"font-size":                  "medium",
	"font-style":                 "normal",
	"font-weight":                "normal",
	"font-variant":               "normal",
	"list-style-type":            "disc",
	"list-style-position":        "outside",
}

// InitialValue returns the initial value of a property, or NullStyle for
// properties without one.
func InitialValue(key string) Property {
	return initialValues[key]
}

// InitialProperties returns a fresh property map holding the initial values
// of all known properties.
func InitialProperties() PropertyMap {
	pm := make(PropertyMap, len(initialValues))
	for k, v := range initialValues {
		pm[k] = v
	}
	return pm
}

// DisplayForElement returns the user agent's default `display` property for
// an HTML element name.
func DisplayForElement(name string) Property {
	switch name {
	case "":
		return "none"
	case "head", "script", "style", "title", "meta", "link":
		return "none"
	case "html", "address", "article", "aside", "blockquote", "body", "div",
		"dl", "dd", "dt", "fieldset", "figure", "footer", "form",
		"h1", "h2", "h3", "h4", "h5", "h6", "header", "hr", "main",
		"nav", "ol", "p", "pre", "section", "ul":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "a", "b", "em", "code", "i", "img", "span", "strong", "sub", "sup":
		return "inline"
	}
	tracer().Debugf("unknown HTML element %s will be set to display: inline", name)
	return "inline"
}
