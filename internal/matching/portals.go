package matching

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// maxPortalSkills is how many matching skills feed the skills-based search
// link variant.
const maxPortalSkills = 3

// PortalLinks builds search links for the external job portals, keyed by
// portal name. Pure string templating: the query is the +-joined title and
// location, the slug the --joined lowercase title. No network calls are
// made; links open in the end user's browser.
func PortalLinks(jobTitle string, matchingSkills []string, location string) map[string]types.PortalLink {
	jobQuery := strings.ReplaceAll(strings.TrimSpace(jobTitle), " ", "+")
	locationQuery := strings.ReplaceAll(strings.TrimSpace(location), " ", "+")
	jobSlug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(jobTitle)), " ", "-")

	topSkills := matchingSkills
	if len(topSkills) > maxPortalSkills {
		topSkills = topSkills[:maxPortalSkills]
	}

	links := map[string]types.PortalLink{
		"LinkedIn": {
			URL:   "https://www.linkedin.com/jobs/search/?keywords=" + jobQuery + "&location=" + locationQuery,
			Color: "#0077B5",
			Emoji: "💼",
		},
		"Indeed": {
			URL:   "https://www.indeed.co.in/jobs?q=" + jobQuery + "&l=" + locationQuery,
			Color: "#003A9B",
			Emoji: "🔍",
		},
		"Naukri": {
			URL:   "https://www.naukri.com/" + jobSlug + "-jobs",
			Color: "#FF7555",
			Emoji: "🇮🇳",
		},
		"Glassdoor": {
			URL:   "https://www.glassdoor.co.in/Job/jobs.htm?sc.keyword=" + jobQuery + "&locT=C&locId=115",
			Color: "#0CAA41",
			Emoji: "🚪",
		},
		"Monster": {
			URL:   "https://www.monsterindia.com/search/" + jobSlug + "-jobs",
			Color: "#6E45A5",
			Emoji: "👾",
		},
		"Internshala": {
			URL:   "https://internshala.com/jobs/" + jobSlug + "-jobs",
			Color: "#0073E6",
			Emoji: "🎓",
		},
		"Shine": {
			URL:   "https://www.shine.com/job-search/" + jobSlug + "-jobs",
			Color: "#F6A623",
			Emoji: "⭐",
		},
		"Foundit": {
			URL:   "https://www.foundit.in/srp/results?query=" + jobQuery + "&locations=" + locationQuery,
			Color: "#E84B3A",
			Emoji: "🔎",
		},
		"Wellfound": {
			URL:   "https://wellfound.com/jobs?q=" + jobQuery,
			Color: "#000000",
			Emoji: "🚀",
		},
		"Freshersworld": {
			URL:   "https://www.freshersworld.com/jobs/jobsearch/" + jobSlug + "-jobs",
			Color: "#E91E63",
			Emoji: "🌟",
		},
	}

	if len(topSkills) > 0 {
		parts := make([]string, len(topSkills))
		for i, skill := range topSkills {
			parts[i] = strings.ReplaceAll(skill, " ", "+")
		}
		links["LinkedIn (Skills)"] = types.PortalLink{
			URL:   "https://www.linkedin.com/jobs/search/?keywords=" + strings.Join(parts, "+") + "&location=" + locationQuery,
			Color: "#005E8B",
			Emoji: "🎯",
		}
	}

	return links
}
