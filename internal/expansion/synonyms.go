package expansion

// synonyms maps a browsing-history query token to its canonical form,
// generalized from the teacher's ExpandSynonyms table
// (eda-embeddingsearch/internal/search/tokenizer.go) into deepsearch's
// personal-history domain.
var synonyms = map[string]string{
	"docs":          "documentation",
	"doc":           "documentation",
	"repo":          "repository",
	"repos":         "repository",
	"yt":            "youtube",
	"gh":            "github",
	"pr":            "pullrequest",
	"prs":           "pullrequest",
	"pull":          "pullrequest",
	"pulls":         "pullrequest",
	"issue":         "issues",
	"ticket":        "issues",
	"tickets":       "issues",
	"pic":           "pictures",
	"pics":          "pictures",
	"photo":         "pictures",
	"photos":        "pictures",
	"vid":           "video",
	"vids":          "video",
	"videos":        "video",
	"mail":          "email",
	"gmail":         "email",
	"cal":           "calendar",
	"config":        "configuration",
	"configs":       "configuration",
	"settings":      "configuration",
	"article":       "articles",
	"blogpost":      "articles",
	"post":          "articles",
	"posts":         "articles",
	"bookmark":      "bookmarks",
	"fave":          "bookmarks",
	"faves":         "bookmarks",
	"favorite":      "bookmarks",
	"favorites":     "bookmarks",
	"api":           "apidocs",
	"reference":     "apidocs",
	"ref":           "apidocs",
	"tut":           "tutorial",
	"tuts":          "tutorial",
	"tutorials":     "tutorial",
	"guide":         "tutorial",
	"guides":        "tutorial",
	"howto":         "tutorial",
	"news":          "article",
	"dash":          "dashboard",
	"dashboards":    "dashboard",
	"console":       "dashboard",
	"login":         "signin",
	"signup":        "register",
	"registration":  "register",
}

// typoCorrections maps common misspellings straight to their intended
// token. Expand consults it only for tokens with no synonym entry, and
// adds the corrected token to the synonym list (synonym origin); the
// misspelled token itself stays among the original tokens.
//
//nolint:misspell // intentionally includes common misspellings for correction
var typoCorrections = map[string]string{
	"documentaton":  "documentation",
	"documentaion":  "documentation",
	"repositry":     "repository",
	"reposetory":    "repository",
	"youtub":        "youtube",
	"youtueb":       "youtube",
	"calender":      "calendar",
	"cofiguration":  "configuration",
	"confguration":  "configuration",
	"dashbord":      "dashboard",
	"dasboard":      "dashboard",
	"tutorail":      "tutorial",
	"tutoial":       "tutorial",
	"articel":       "articles",
	"artcle":        "articles",
	"bookmrk":       "bookmarks",
	"bookmakrs":     "bookmarks",
}

func correctTypo(token string) (string, bool) {
	canon, ok := typoCorrections[token]
	return canon, ok
}
