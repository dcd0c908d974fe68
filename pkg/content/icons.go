package content

// Icon describes how a skill or certification logo is rendered: a short label
// shown inside the badge and an accent color class pair.
type Icon struct {
	Label   string
	Classes string // Tailwind classes for the badge accent
}

// DefaultIcon is used whenever an icon key is missing from the registry.
var DefaultIcon = Icon{Label: "#", Classes: "bg-[#21262D] text-[#8B949E]"}

var iconRegistry = map[string]Icon{
	"cpp":        {Label: "C++", Classes: "bg-blue-900/40 text-blue-300"},
	"java":       {Label: "Jv", Classes: "bg-orange-900/40 text-orange-300"},
	"python":     {Label: "Py", Classes: "bg-yellow-900/40 text-yellow-300"},
	"javascript": {Label: "JS", Classes: "bg-amber-900/40 text-amber-300"},
	"react":      {Label: "Re", Classes: "bg-cyan-900/40 text-cyan-300"},
	"nodejs":     {Label: "No", Classes: "bg-green-900/40 text-green-300"},
	"express":    {Label: "Ex", Classes: "bg-slate-800 text-slate-300"},
	"mongodb":    {Label: "Mg", Classes: "bg-emerald-900/40 text-emerald-300"},
	"html":       {Label: "H5", Classes: "bg-orange-900/40 text-orange-300"},
	"css":        {Label: "C3", Classes: "bg-sky-900/40 text-sky-300"},
	"ml":         {Label: "ML", Classes: "bg-purple-900/40 text-purple-300"},
	"data":       {Label: "Da", Classes: "bg-indigo-900/40 text-indigo-300"},
	"tensorflow": {Label: "TF", Classes: "bg-orange-900/40 text-orange-300"},
	"git":        {Label: "Gt", Classes: "bg-red-900/40 text-red-300"},
	"puzzle":     {Label: "Ps", Classes: "bg-teal-900/40 text-teal-300"},
	"prompt":     {Label: "Pe", Classes: "bg-pink-900/40 text-pink-300"},
	"algorithm":  {Label: "Al", Classes: "bg-violet-900/40 text-violet-300"},
	"coursera":   {Label: "Co", Classes: "bg-blue-900/40 text-blue-300"},
	"nptel":      {Label: "NP", Classes: "bg-amber-900/40 text-amber-300"},
	"udemy":      {Label: "Ud", Classes: "bg-purple-900/40 text-purple-300"},
	"aws":        {Label: "AW", Classes: "bg-orange-900/40 text-orange-300"},
}

// IconFor resolves an icon key, falling back to DefaultIcon for unknown keys.
func IconFor(key string) Icon {
	if icon, ok := iconRegistry[key]; ok {
		return icon
	}
	return DefaultIcon
}
