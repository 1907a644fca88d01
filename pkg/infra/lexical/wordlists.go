package lexical

import "regexp"

var englishTerms = []string{
	"asshole",
	"bastard",
	"bitch",
	"bullshit",
	"cock",
	"cunt",
	"dick",
	"dickhead",
	"douchebag",
	"dumbass",
	"fag",
	"faggot",
	"fuck",
	"fucker",
	"fucking",
	"kill yourself",
	"kys",
	"motherfucker",
	"nigga",
	"nigger",
	"porn",
	"pussy",
	"retard",
	"shit",
	"slut",
	"son of a bitch",
	"twat",
	"wanker",
	"whore",
}

var hindiRomanTerms = []string{
	"behenchod",
	"bhenchod",
	"bhosdike",
	"bsdk",
	"chutiya",
	"gaandu",
	"gandu",
	"harami",
	"kamina",
	"kutta",
	"kutte",
	"madarchod",
	"randi",
}

var hindiDevanagariTerms = []string{
	"कमीना",
	"कुत्ता",
	"कुत्ते",
	"गांडू",
	"चूतिया",
	"बहनचोद",
	"भेनचोद",
	"भोसड़ी",
	"मादरचोद",
	"रंडी",
	"हरामी",
}

// boundaries are spelled out because several patterns start or end with a
// symbol, where \b does not apply
const (
	pre  = `(?:^|[^\p{L}\p{N}])`
	post = `(?:$|[^\p{L}\p{N}])`
)

func obfuscation(name, body string) Pattern {
	return Pattern{Name: name, Expr: regexp.MustCompile(`(?i)` + pre + body + post)}
}

var obfuscationPatterns = []Pattern{
	obfuscation("fuck", `f[u*@#v]{1,2}c?k(?:ing|er|ed)?`),
	obfuscation("shit", `sh[i1!|*]t`),
	obfuscation("bitch", `b[i1!|*]tch`),
	obfuscation("asshole", `[a@4][s$5*]{2}h[o0*]le`),
	obfuscation("cunt", `c[u*]nt`),
	obfuscation("dick", `d[i1!*]ck`),
	obfuscation("whore", `wh[o0*]re`),
	obfuscation("bastard", `b[a@4]st[a@4]rd`),
	obfuscation("slur", `n[i1!*]gg(?:[e3]r|[a@4])`),
}
