package domain

// builtinTags is the closed vocabulary of standard markup tag names, keyed
// by lower-cased form. Tags written with a lowercase first letter are looked
// up here and never classified as targets; capitalized tags are components
// regardless. The map is package-private and never mutated after init.
var builtinTags = map[string]struct{}{
	// Document structure
	"html": {}, "head": {}, "body": {}, "title": {}, "base": {}, "link": {},
	"meta": {}, "style": {}, "script": {}, "noscript": {}, "template": {},
	"slot": {},
	// Sectioning
	"address": {}, "article": {}, "aside": {}, "footer": {}, "header": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {}, "hgroup": {},
	"main": {}, "nav": {}, "section": {}, "search": {},
	// Text content
	"blockquote": {}, "dd": {}, "div": {}, "dl": {}, "dt": {},
	"figcaption": {}, "figure": {}, "hr": {}, "li": {}, "menu": {}, "ol": {},
	"p": {}, "pre": {}, "ul": {},
	// Inline text
	"a": {}, "abbr": {}, "b": {}, "bdi": {}, "bdo": {}, "br": {}, "cite": {},
	"code": {}, "data": {}, "dfn": {}, "em": {}, "i": {}, "kbd": {},
	"mark": {}, "q": {}, "rp": {}, "rt": {}, "ruby": {}, "s": {}, "samp": {},
	"small": {}, "span": {}, "strong": {}, "sub": {}, "sup": {}, "time": {},
	"u": {}, "var": {}, "wbr": {},
	// Media and embedding
	"area": {}, "audio": {}, "img": {}, "map": {}, "track": {}, "video": {},
	"embed": {}, "iframe": {}, "object": {}, "param": {}, "picture": {},
	"portal": {}, "source": {}, "canvas": {},
	// SVG and math entry points
	"svg": {}, "path": {}, "circle": {}, "ellipse": {}, "line": {},
	"polygon": {}, "polyline": {}, "rect": {}, "g": {}, "defs": {},
	"clippath": {}, "lineargradient": {}, "radialgradient": {}, "stop": {},
	"text": {}, "tspan": {}, "use": {}, "mask": {}, "pattern": {},
	"foreignobject": {}, "math": {},
	// Scripting-adjacent and editing
	"del": {}, "ins": {}, "caption": {}, "col": {}, "colgroup": {},
	// Tables
	"table": {}, "tbody": {}, "td": {}, "tfoot": {}, "th": {}, "thead": {},
	"tr": {},
	// Forms
	"button": {}, "datalist": {}, "fieldset": {}, "form": {}, "input": {},
	"label": {}, "legend": {}, "meter": {}, "optgroup": {}, "option": {},
	"output": {}, "progress": {}, "select": {}, "textarea": {},
	// Interactive
	"details": {}, "dialog": {}, "summary": {},
}

// IsBuiltinTag reports whether the lower-cased tag belongs to the built-in
// markup vocabulary.
func IsBuiltinTag(lowered string) bool {
	_, ok := builtinTags[lowered]

	return ok
}
